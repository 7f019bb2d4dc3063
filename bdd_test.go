package persona

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/crypto/bcrypt"
)

func TestPersonLifecycle(t *testing.T) {
	Convey("Given a fresh person service", t, func() {
		hasher := NewBcryptHasher(bcrypt.MinCost)
		svc := NewService(NewPersonRepository(), hasher)

		Convey("When bob signs up", func() {
			p, err := svc.Create(createPersonRequest{Login: strPtr("bob12"), Password: strPtr("Passw0rd")})
			So(err, ShouldBeNil)
			So(p.ID, ShouldBeGreaterThan, 0)
			So(p.PasswordHash, ShouldNotEqual, "Passw0rd")

			Convey("Then a credential lookup returns his principal", func() {
				lookup := NewCredentialLookup(svc)

				principal, err := lookup.Lookup("bob12")

				So(err, ShouldBeNil)
				So(principal.Login, ShouldEqual, "bob12")
				So(principal.PasswordHash, ShouldEqual, p.PasswordHash)
				So(principal.Roles, ShouldBeEmpty)
			})

			Convey("And signing up again with the same login is rejected", func() {
				_, err := svc.Create(createPersonRequest{Login: strPtr("bob12"), Password: strPtr("Other1pw")})
				So(err, ShouldEqual, ErrExistingLogin)
			})

			Convey("When he changes his password", func() {
				updated, err := svc.ChangePassword(p.ID, changePasswordRequest{Password: strPtr("NewPass1")})

				So(err, ShouldBeNil)
				So(updated.Login, ShouldEqual, "bob12")
				So(hasher.Matches(updated.PasswordHash, "NewPass1"), ShouldBeTrue)
				So(hasher.Matches(updated.PasswordHash, "Passw0rd"), ShouldBeFalse)
			})

			Convey("When he deletes his account", func() {
				So(svc.Delete(p.ID), ShouldBeNil)

				_, err := svc.GetByID(p.ID)
				So(err, ShouldEqual, ErrNotFound)

				Convey("Then deleting again reports not found", func() {
					So(svc.Delete(p.ID), ShouldEqual, ErrNotFound)
				})
			})
		})
	})
}
