package persona

import (
	"fmt"
)

type Service interface {
	ListAll() ([]Person, error)
	GetByID(id ID) (*Person, error)
	Create(req createPersonRequest) (*Person, error)
	ChangePassword(id ID, req changePasswordRequest) (*Person, error)
	Replace(req replacePersonRequest) error
	Delete(id ID) error
	FindByLogin(login string) (*Person, error)
}

type service struct {
	persons Repository
	hasher  Hasher
}

func NewService(persons Repository, hasher Hasher) Service {
	return &service{persons: persons, hasher: hasher}
}

// Request bodies use pointer fields so that an absent or null JSON value
// is distinguishable from a blank one.
type createPersonRequest struct {
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

type changePasswordRequest struct {
	Password *string `json:"password"`
}

type replacePersonRequest struct {
	ID       ID      `json:"id"`
	Login    *string `json:"login"`
	Password *string `json:"password"`
}

func (svc *service) ListAll() ([]Person, error) {
	return svc.persons.FindAll()
}

func (svc *service) GetByID(id ID) (*Person, error) {
	if id <= 0 {
		return nil, ErrNotFound
	}
	return svc.persons.FindByID(id)
}

func (svc *service) Create(req createPersonRequest) (*Person, error) {
	if req.Login == nil || req.Password == nil {
		return nil, ErrMissingField
	}

	login, password := *req.Login, *req.Password
	if err := validateCredentials(login, password); err != nil {
		return nil, err
	}

	if err := svc.verifyLoginNotInUse(login); err != nil {
		return nil, err
	}

	hash, err := svc.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	p := &Person{Login: login, PasswordHash: hash}
	if err := svc.persons.Store(p); err != nil {
		return nil, fmt.Errorf("error saving person: %v", err)
	}

	return p, nil
}

func (svc *service) ChangePassword(id ID, req changePasswordRequest) (*Person, error) {
	if req.Password == nil {
		return nil, ErrMissingField
	}

	p, err := svc.GetByID(id)
	if err != nil {
		return nil, err
	}

	hash, err := svc.hasher.Hash(*req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	p.PasswordHash = hash
	if err := svc.persons.Update(p); err != nil {
		return nil, fmt.Errorf("error updating person: %v", err)
	}

	return p, nil
}

// Replace overwrites the whole record. The supplied password is hashed
// the same way Create hashes it, so a replace never stores plaintext.
func (svc *service) Replace(req replacePersonRequest) error {
	if req.Login == nil || req.Password == nil {
		return ErrMissingField
	}

	if _, err := svc.GetByID(req.ID); err != nil {
		return err
	}

	hash, err := svc.hasher.Hash(*req.Password)
	if err != nil {
		return fmt.Errorf("error hashing password: %v", err)
	}

	p := &Person{ID: req.ID, Login: *req.Login, PasswordHash: hash}
	if err := svc.persons.Update(p); err != nil {
		return fmt.Errorf("error updating person: %v", err)
	}

	return nil
}

func (svc *service) Delete(id ID) error {
	if _, err := svc.GetByID(id); err != nil {
		return err
	}
	return svc.persons.Delete(id)
}

func (svc *service) FindByLogin(login string) (*Person, error) {
	return svc.persons.FindByLogin(login)
}

func (svc *service) verifyLoginNotInUse(login string) error {
	p, err := svc.persons.FindByLogin(login)
	if err != nil && err != ErrNotFound {
		return err
	}
	if p != nil {
		return ErrExistingLogin
	}
	return nil
}
