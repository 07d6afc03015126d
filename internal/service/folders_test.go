package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"chmura-plikow/internal/models"
	"chmura-plikow/internal/store"
)

type testStores struct {
	folders  *store.MemoryFolderStore
	files    *store.MemoryFileMetadataStore
	contents *store.MemoryFileContentStore
}

func newTestStores() testStores {
	return testStores{
		folders:  store.NewMemoryFolderStore(),
		files:    store.NewMemoryFileMetadataStore(),
		contents: store.NewMemoryFileContentStore(),
	}
}

func (ts testStores) folderService() *FolderService {
	return NewFolderService(ts.folders, ts.files, ts.contents)
}

func (ts testStores) fileService() *FileService {
	return NewFileService(ts.folders, ts.files, ts.contents)
}

func putRoot(t *testing.T, ts testStores, ownerID string) models.Folder {
	t.Helper()
	root := models.Folder{ID: "root-" + ownerID, Name: "Root", OwnerID: ownerID}
	require.NoError(t, ts.folders.Put(context.Background(), root))
	return root
}

func TestCreateFolderNaming(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	first, err := svc.Create(ctx, root.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "New Folder", first.Name)
	require.Equal(t, root.ID, *first.ParentID)
	require.Equal(t, "u1", first.OwnerID)

	second, err := svc.Create(ctx, root.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "New Folder (1)", second.Name)

	third, err := svc.Create(ctx, root.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "New Folder (2)", third.Name)

	// A renamed sibling no longer counts toward the default name.
	_, err = svc.Rename(ctx, second.ID, "u1", "Dokumenty")
	require.NoError(t, err)

	fourth, err := svc.Create(ctx, root.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, "New Folder (2)", fourth.Name)
}

func TestCreateFolderChecksParent(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	_, err := svc.Create(ctx, "nieistnieje", "u1")
	require.ErrorIs(t, err, ErrFolderNotFound)

	_, err = svc.Create(ctx, root.ID, "u2")
	require.ErrorIs(t, err, ErrOwnershipViolated)
}

func TestRenameFolder(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	folder, err := svc.Create(ctx, root.ID, "u1")
	require.NoError(t, err)

	renamed, err := svc.Rename(ctx, folder.ID, "u1", "Faktury")
	require.NoError(t, err)
	require.Equal(t, "Faktury", renamed.Name)
	require.Equal(t, folder.ID, renamed.ID)
	require.Equal(t, folder.ParentID, renamed.ParentID)

	_, err = svc.Rename(ctx, folder.ID, "u2", "Cudze")
	require.ErrorIs(t, err, ErrOwnershipViolated)

	_, err = svc.Rename(ctx, "nieistnieje", "u1", "Nic")
	require.ErrorIs(t, err, ErrFolderNotFound)
}

func TestRemoveFolderCascades(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	folders := ts.folderService()
	files := ts.fileService()
	root := putRoot(t, ts, "u1")

	// root -> a -> b -> c, with one file in each of a, b, c.
	a, err := folders.Create(ctx, root.ID, "u1")
	require.NoError(t, err)
	b, err := folders.Create(ctx, a.ID, "u1")
	require.NoError(t, err)
	c, err := folders.Create(ctx, b.ID, "u1")
	require.NoError(t, err)

	for _, parent := range []*models.Folder{a, b, c} {
		_, err := files.Upload(ctx, UploadFileParams{
			Name:     "notatki.txt",
			MimeType: "text/plain",
			ParentID: parent.ID,
			OwnerID:  "u1",
			Content:  []byte("tresc"),
		})
		require.NoError(t, err)
	}

	require.NoError(t, folders.Remove(ctx, a.ID, "u1"))

	remaining, err := ts.folders.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, root.ID, remaining[0].ID)

	noFiles, err := ts.files.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, noFiles)

	noContents, err := ts.contents.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, noContents)
}

func TestRemoveFolderChecksOwnership(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	require.ErrorIs(t, svc.Remove(ctx, "nieistnieje", "u1"), ErrFolderNotFound)
	require.ErrorIs(t, svc.Remove(ctx, root.ID, "u2"), ErrOwnershipViolated)
}

func TestGetFolderMasksForeignOwner(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	found, err := svc.Get(ctx, root.ID, "u1")
	require.NoError(t, err)
	require.Equal(t, root.ID, found.ID)

	_, err = svc.Get(ctx, root.ID, "u2")
	require.ErrorIs(t, err, ErrFolderNotFound)
}

func TestRootFolder(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	svc := ts.folderService()
	root := putRoot(t, ts, "u1")

	found, err := svc.Root(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, root.ID, found.ID)

	_, err = svc.Root(ctx, "u2")
	require.ErrorIs(t, err, ErrRootFolderNotFound)
}

func TestFolderContentSortedByName(t *testing.T) {
	ctx := context.Background()
	ts := newTestStores()
	folders := ts.folderService()
	files := ts.fileService()
	root := putRoot(t, ts, "u1")

	for _, name := range []string{"Zdjecia", "Archiwum", "Muzyka"} {
		created, err := folders.Create(ctx, root.ID, "u1")
		require.NoError(t, err)
		_, err = folders.Rename(ctx, created.ID, "u1", name)
		require.NoError(t, err)
	}
	for _, name := range []string{"c.txt", "a.txt", "b.txt"} {
		_, err := files.Upload(ctx, UploadFileParams{
			Name:     name,
			MimeType: "text/plain",
			ParentID: root.ID,
			OwnerID:  "u1",
			Content:  []byte(name),
		})
		require.NoError(t, err)
	}

	content, err := folders.Content(ctx, root.ID, "u1")
	require.NoError(t, err)

	require.Len(t, content.Folders, 3)
	require.Equal(t, "Archiwum", content.Folders[0].Name)
	require.Equal(t, "Muzyka", content.Folders[1].Name)
	require.Equal(t, "Zdjecia", content.Folders[2].Name)

	require.Len(t, content.Files, 3)
	require.Equal(t, "a.txt", content.Files[0].Name)
	require.Equal(t, "b.txt", content.Files[1].Name)
	require.Equal(t, "c.txt", content.Files[2].Name)

	_, err = folders.Content(ctx, root.ID, "u2")
	require.ErrorIs(t, err, ErrFolderNotFound)
}
