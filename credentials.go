package persona

// Principal is the identity/credential pair handed to an external
// authentication framework during credential verification. The service
// grants no capabilities, so Roles is always empty.
type Principal struct {
	Login        string
	PasswordHash string
	Roles        []string
}

type CredentialLookup struct {
	persons Service
}

func NewCredentialLookup(svc Service) *CredentialLookup {
	return &CredentialLookup{persons: svc}
}

// Lookup fetches the stored credentials for login. Comparing them
// against a presented password is the caller's job.
func (cl *CredentialLookup) Lookup(login string) (Principal, error) {
	p, err := cl.persons.FindByLogin(login)
	if err == ErrNotFound {
		return Principal{}, ErrLoginNotFound
	}
	if err != nil {
		return Principal{}, err
	}
	return Principal{Login: p.Login, PasswordHash: p.PasswordHash, Roles: []string{}}, nil
}
