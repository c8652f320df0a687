package testutil

import (
	"testing"

	"github.com/trezcool/colegio/core/school"
	"github.com/trezcool/colegio/storage/database/inmem"
)

// Seed makes generated datasets reproducible across test runs.
const Seed = 20240315

func NewDataset() *school.Dataset {
	return school.Generate(school.NewRand(Seed))
}

// PrepareRepo indexes a freshly generated dataset.
func PrepareRepo(t *testing.T, ds ...*school.Dataset) school.Repository {
	var data *school.Dataset
	if len(ds) > 0 {
		data = ds[0]
	} else {
		data = NewDataset()
	}
	db, err := inmemdb.Open(data)
	if err != nil {
		t.Fatalf("PrepareRepo() failed: %v", err)
	}
	return inmemdb.NewSchoolRepository(db)
}

func NewService(t *testing.T, ds ...*school.Dataset) (*school.Service, school.Repository) {
	repo := PrepareRepo(t, ds...)
	return school.NewService(repo, 98.2), repo
}

func GetUser(t *testing.T, repo school.Repository, id string) school.User {
	usr, err := repo.GetUserByID(id)
	if err != nil {
		t.Fatalf("GetUser(%q) failed: %v", id, err)
	}
	return usr
}
