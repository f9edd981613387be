package account_test

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/happypaws-scheduler/internal/audit"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/auth"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/httperr"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/models"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/testutil"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/timezone"
	"github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/account"
	ucAppointment "github.com/BruksfildServices01/happypaws-scheduler/internal/usecase/appointment"
)

var clock = timezone.Fixed(time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC))

var admin = auth.Principal{ID: "00000000-0000-0000-0000-0000000000aa", Role: auth.RoleAdmin}

func book(t *testing.T, db *gorm.DB, owner models.User, pet models.Pet, hm string) *models.Appointment {
	t.Helper()

	ap, err := ucAppointment.NewCreateAppointment(
		repository.NewAppointmentGormRepository(db),
		audit.Discard{},
	).Execute(
		context.Background(),
		auth.Principal{ID: owner.ID, Role: auth.RoleUser},
		ucAppointment.CreateAppointmentInput{PetID: pet.ID, Date: "2025-06-12", Time: hm, ServiceType: "Checkup"},
	)
	if err != nil {
		t.Fatalf("book: %v", err)
	}
	return ap
}

func count(t *testing.T, db *gorm.DB, model any, where string, args ...any) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Where(where, args...).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestDeleteUser_RemovesEverythingTheyOwn(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "user")
	other := testutil.SeedUser(t, db, "user")
	pet := testutil.SeedPet(t, db, owner.ID)
	otherPet := testutil.SeedPet(t, db, other.ID)

	if err := db.Create(&models.Vaccine{PetID: pet.ID, Name: "Rabies"}).Error; err != nil {
		t.Fatalf("seed vaccine: %v", err)
	}
	book(t, db, owner, pet, "10:00")
	book(t, db, owner, pet, "11:00")
	kept := book(t, db, other, otherPet, "12:00")

	del := account.NewDeleteUser(repository.NewAccountGormRepository(db), audit.Discard{})
	res, err := del.Execute(context.Background(), admin, owner.ID)
	if err != nil {
		t.Fatalf("delete user: %v", err)
	}

	if res.Appointments != 2 || res.Pets != 1 || res.PetRecords != 1 {
		t.Fatalf("res = %+v", res)
	}
	if n := count(t, db, &models.Appointment{}, "owner_id = ?", owner.ID); n != 0 {
		t.Fatalf("appointments left = %d", n)
	}
	if n := count(t, db, &models.UserAppointment{}, "user_id = ?", owner.ID); n != 0 {
		t.Fatalf("links left = %d", n)
	}
	if n := count(t, db, &models.Vaccine{}, "pet_id = ?", pet.ID); n != 0 {
		t.Fatalf("vaccines left = %d", n)
	}
	if n := count(t, db, &models.Appointment{}, "id = ?", kept.ID); n != 1 {
		t.Fatalf("other user's appointment removed")
	}
}

func TestDeleteUser_UnknownAndForbidden(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "user")
	del := account.NewDeleteUser(repository.NewAccountGormRepository(db), audit.Discard{})

	if _, err := del.Execute(context.Background(), admin, "00000000-0000-0000-0000-000000000404"); !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("err = %v, want user_not_found", err)
	}

	self := auth.Principal{ID: owner.ID, Role: auth.RoleUser}
	if _, err := del.Execute(context.Background(), self, owner.ID); !httperr.IsKind(err, httperr.KindForbidden) {
		t.Fatalf("err = %v, want forbidden", err)
	}
}

func TestDeletePet_LeavesAppointments(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.SeedUser(t, db, "user")
	pet := testutil.SeedPet(t, db, owner.ID)
	ap := book(t, db, owner, pet, "10:00")

	if err := db.Create(&models.MedicalRecord{PetID: pet.ID, Diagnosis: "Otitis"}).Error; err != nil {
		t.Fatalf("seed record: %v", err)
	}

	del := account.NewDeletePet(repository.NewAccountGormRepository(db), audit.Discard{})
	res, err := del.Execute(context.Background(), admin, pet.ID)
	if err != nil {
		t.Fatalf("delete pet: %v", err)
	}
	if res.Pets != 1 || res.PetRecords != 1 {
		t.Fatalf("res = %+v", res)
	}

	if n := count(t, db, &models.Appointment{}, "id = ?", ap.ID); n != 1 {
		t.Fatalf("appointment removed with pet")
	}
	if n := count(t, db, &models.MedicalRecord{}, "pet_id = ?", pet.ID); n != 0 {
		t.Fatalf("records left = %d", n)
	}

	if _, err := del.Execute(context.Background(), admin, pet.ID); !httperr.IsBusiness(err, "pet_not_found") {
		t.Fatalf("second delete: err = %v", err)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	repo := repository.NewAccountGormRepository(db)
	tokens := auth.NewTokenIssuer("secret", time.Hour, clock)
	ctx := context.Background()

	session, err := account.NewRegister(repo, tokens, audit.Discard{}, clock).Execute(ctx, account.RegisterInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "  Ana@Example.com ",
		Password:  "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if session.User.Email != "ana@example.com" || session.User.JoinedAt != "2025-06-10" {
		t.Fatalf("user = %+v", session.User)
	}

	p, err := tokens.Parse(session.Token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if p.ID != session.User.ID || p.Role != auth.RoleUser {
		t.Fatalf("principal = %+v", p)
	}

	_, err = account.NewRegister(repo, tokens, audit.Discard{}, clock).Execute(ctx, account.RegisterInput{
		FirstName: "Ana", LastName: "Again", Email: "ana@example.com", Password: "another-pass",
	})
	if !httperr.IsBusiness(err, "email_already_exists") {
		t.Fatalf("duplicate: err = %v", err)
	}

	login := account.NewLogin(repo, tokens)
	if _, err := login.Execute(ctx, "ana@example.com", "s3cret-pass"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := login.Execute(ctx, "ana@example.com", "wrong"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("wrong password: err = %v", err)
	}
	if _, err := login.Execute(ctx, "nobody@example.com", "s3cret-pass"); !httperr.IsBusiness(err, "invalid_credentials") {
		t.Fatalf("unknown email: err = %v", err)
	}
}
