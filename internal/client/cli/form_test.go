package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/client/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(l ...string) string { return strings.Join(l, "\n") + "\n" }

func TestAdd_ValidInputPrepends(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, lines("Ada", "Lovelace", "Analytical", "Programmer", "UK"))
	a.store.ReplaceAll(seedUsers())

	require.NoError(t, a.Add(context.Background()))

	got := a.store.Master()
	require.Len(t, got, 3)
	assert.Equal(t, models.User{
		ID:        "local-1",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Company:   models.Company{Name: "Analytical", Title: "Programmer"},
		Address:   models.Address{Country: "UK"},
	}, got[0])
	assert.Equal(t, got[0], a.store.Displayed()[0])
	assert.Contains(t, out.String(), "Added Ada Lovelace (local-1)")
	assert.False(t, a.FormVisible())
}

func TestAdd_RepromptsOnlyFailingFields(t *testing.T) {
	input := lines(
		"R2D2", "", "Rebels", "Droid", "Tatooine",
		"Artoo", "Detoo",
	)
	a, out := newTestApp(t, &fakeClient{}, input)

	require.NoError(t, a.Add(context.Background()))

	s := out.String()
	assert.Contains(t, s, "  First name: "+validation.MsgFirstNameHasNumber)
	assert.Contains(t, s, "  Last name: "+validation.MsgLastNameRequired)
	assert.Contains(t, s, "First name ("+validation.MsgFirstNameHasNumber+")")
	assert.Equal(t, 1, strings.Count(s, "Company name\n"))

	got := a.store.Master()
	require.Len(t, got, 1)
	assert.Equal(t, "Artoo", got[0].FirstName)
	assert.Equal(t, "Detoo", got[0].LastName)
	assert.Equal(t, "Rebels", got[0].Company.Name)
}

func TestAdd_CancelLeavesStoreUnchanged(t *testing.T) {
	a, out := newTestApp(t, &fakeClient{}, lines("Ada", ":cancel"))

	require.NoError(t, a.Add(context.Background()))

	master, _ := a.store.Len()
	assert.Zero(t, master)
	assert.Contains(t, out.String(), "Cancelled")
	assert.False(t, a.FormVisible())
}

func TestAdd_ClearRestartsForm(t *testing.T) {
	input := lines(
		"Wrong", "Name", ":clear",
		"Grace", "Hopper", "Navy", "Admiral", "USA",
	)
	a, out := newTestApp(t, &fakeClient{}, input)

	require.NoError(t, a.Add(context.Background()))

	assert.Contains(t, out.String(), "Form cleared")
	got := a.store.Master()
	require.Len(t, got, 1)
	assert.Equal(t, "Grace", got[0].FirstName)
	assert.Equal(t, "USA", got[0].Address.Country)
}

func TestAdd_EOFAbandonsForm(t *testing.T) {
	a, _ := newTestApp(t, &fakeClient{}, "Ada\n")

	err := a.Add(context.Background())
	assert.Error(t, err)
	master, _ := a.store.Len()
	assert.Zero(t, master)
	assert.False(t, a.FormVisible())
}

func TestAddForm_EditClearsFieldError(t *testing.T) {
	f := newAddForm()
	f.errs[models.FieldRole] = validation.MsgRoleRequired
	f.errs[models.FieldCountry] = validation.MsgCountryRequired

	assert.Equal(t, []models.Field{models.FieldRole, models.FieldCountry}, f.pending())

	f.edit(models.FieldRole, "Boss")
	assert.Equal(t, "Boss", f.values.Role)
	assert.Empty(t, f.errs.Get(models.FieldRole))
	assert.Equal(t, []models.Field{models.FieldCountry}, f.pending())

	f.reset()
	assert.Equal(t, models.Fields, f.pending())
	assert.Equal(t, models.Candidate{}, f.values)
}
