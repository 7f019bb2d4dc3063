package persona

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

// NewRouter builds the routing table for the person API.
func NewRouter(svc Service) http.Handler {
	router := httprouter.New()
	router.Handler(http.MethodGet, "/person/:id", GetPersonHandler(svc))
	router.Handler(http.MethodPost, "/person/sign-up", SignUpHandler(svc))
	router.Handler(http.MethodPatch, "/person/changePassword/:id", ChangePasswordHandler(svc))
	router.Handler(http.MethodPut, "/person", ReplacePersonHandler(svc))
	router.Handler(http.MethodDelete, "/person/:id", DeletePersonHandler(svc))
	return router
}

func ListPersonsHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		persons, err := svc.ListAll()
		if err != nil {
			encodeError(err, w)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(persons)
	})
}

// GetPersonHandler serves both GET /person/all and GET /person/:id.
// httprouter cannot register a static segment next to a wildcard at the
// same position, so the list route is dispatched on the param value.
func GetPersonHandler(svc Service) http.Handler {
	list := ListPersonsHandler(svc)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == "all" {
			list.ServeHTTP(w, r)
			return
		}

		id, err := personID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.GetByID(id)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	})
}

func SignUpHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeCreatePersonRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.Create(req)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(p)
	})
}

func ChangePasswordHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := personID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		req, err := decodeChangePasswordRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		p, err := svc.ChangePassword(id, req)
		if err != nil {
			encodeError(err, w)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(p)
	})
}

func ReplacePersonHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeReplacePersonRequest(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := svc.Replace(req); err != nil {
			encodeError(err, w)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

func DeletePersonHandler(svc Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := personID(r)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if err := svc.Delete(id); err != nil {
			encodeError(err, w)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}

type errorResponse struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

func encodeError(err error, w http.ResponseWriter) {
	switch err {
	case ErrNotFound:
		w.WriteHeader(http.StatusNotFound)
	case ErrInvalidLogin, ErrInvalidPassword, ErrMissingField:
		encodeErrorBody(err, http.StatusBadRequest, w)
	case ErrExistingLogin:
		encodeErrorBody(err, http.StatusConflict, w)
	default:
		log.Printf("error handling request: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(errorResponse{Message: "internal server error", Type: "StoreFailure"})
	}
}

func encodeErrorBody(err error, code int, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(errorResponse{Message: err.Error(), Type: errKind(err)})
}

func errKind(err error) string {
	switch err {
	case ErrInvalidLogin:
		return "InvalidLogin"
	case ErrInvalidPassword:
		return "InvalidPassword"
	case ErrMissingField:
		return "MissingField"
	case ErrExistingLogin:
		return "ExistingLogin"
	default:
		return "StoreFailure"
	}
}

func personID(r *http.Request) (ID, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return ID(id), nil
}

func decodeCreatePersonRequest(r *http.Request) (createPersonRequest, error) {
	req := createPersonRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return createPersonRequest{}, err
	}
	return req, nil
}

func decodeChangePasswordRequest(r *http.Request) (changePasswordRequest, error) {
	req := changePasswordRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return changePasswordRequest{}, err
	}
	return req, nil
}

func decodeReplacePersonRequest(r *http.Request) (replacePersonRequest, error) {
	req := replacePersonRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return replacePersonRequest{}, err
	}
	return req, nil
}
