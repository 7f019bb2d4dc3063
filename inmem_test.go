package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInMemRepository_StoreAssignsSequentialIDs(t *testing.T) {
	repo := NewPersonRepository()

	bob := &Person{Login: "bob12", PasswordHash: "hash1"}
	alice := &Person{Login: "alice77", PasswordHash: "hash2"}

	assert.Nil(t, repo.Store(bob))
	assert.Nil(t, repo.Store(alice))

	assert.Equal(t, ID(1), bob.ID)
	assert.Equal(t, ID(2), alice.ID)
}

func TestInMemRepository_FindAllSortedByID(t *testing.T) {
	repo := NewPersonRepository()
	_ = repo.Store(&Person{Login: "bob12"})
	_ = repo.Store(&Person{Login: "alice77"})

	persons, err := repo.FindAll()

	assert.Nil(t, err)
	assert.Len(t, persons, 2)
	assert.Equal(t, "bob12", persons[0].Login)
	assert.Equal(t, "alice77", persons[1].Login)
}

func TestInMemRepository_UpdateMissingPerson(t *testing.T) {
	repo := NewPersonRepository()

	err := repo.Update(&Person{ID: 42, Login: "bob12"})

	assert.Equal(t, ErrNotFound, err)
}

func TestInMemRepository_DeleteIsNotIdempotent(t *testing.T) {
	repo := NewPersonRepository()
	p := &Person{Login: "bob12"}
	_ = repo.Store(p)

	assert.Nil(t, repo.Delete(p.ID))
	assert.Equal(t, ErrNotFound, repo.Delete(p.ID))

	_, err := repo.FindByID(p.ID)
	assert.Equal(t, ErrNotFound, err)
}

func TestInMemRepository_StoredPersonIsACopy(t *testing.T) {
	repo := NewPersonRepository()
	p := &Person{Login: "bob12", PasswordHash: "hash1"}
	_ = repo.Store(p)

	p.Login = "mutated"

	stored, err := repo.FindByID(p.ID)
	assert.Nil(t, err)
	assert.Equal(t, "bob12", stored.Login)
}
