package persona

import (
	"sort"
	"sync"
)

type personRepository struct {
	mu      sync.RWMutex
	persons map[ID]*Person
	lastID  ID
}

func NewPersonRepository() Repository {
	return &personRepository{persons: map[ID]*Person{}}
}

func (repo *personRepository) Store(p *Person) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.lastID++
	p.ID = repo.lastID

	stored := *p
	repo.persons[p.ID] = &stored
	return nil
}

func (repo *personRepository) FindByID(id ID) (*Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	if p, ok := repo.persons[id]; ok {
		found := *p
		return &found, nil
	}
	return nil, ErrNotFound
}

func (repo *personRepository) FindByLogin(login string) (*Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, p := range repo.persons {
		if p.Login == login {
			found := *p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (repo *personRepository) FindAll() ([]Person, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	persons := make([]Person, 0, len(repo.persons))
	for _, p := range repo.persons {
		persons = append(persons, *p)
	}
	sort.Slice(persons, func(i, j int) bool { return persons[i].ID < persons[j].ID })
	return persons, nil
}

func (repo *personRepository) Update(p *Person) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.persons[p.ID]; !ok {
		return ErrNotFound
	}
	stored := *p
	repo.persons[p.ID] = &stored
	return nil
}

func (repo *personRepository) Delete(id ID) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.persons[id]; !ok {
		return ErrNotFound
	}
	delete(repo.persons, id)
	return nil
}
