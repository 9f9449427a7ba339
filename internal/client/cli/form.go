package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/userlist/internal/client/models"
	"github.com/dmitrijs2005/userlist/internal/client/store"
	"github.com/dmitrijs2005/userlist/internal/client/validation"
)

const (
	cmdCancel = ":cancel"
	cmdClear  = ":clear"
)

var errFormCancelled = errors.New("form cancelled")

// addForm is the state of an open add form: the values typed so far and the
// messages from the last rejected submit.
type addForm struct {
	values models.Candidate
	errs   validation.FieldErrors
}

func newAddForm() *addForm {
	return &addForm{errs: validation.FieldErrors{}}
}

func (f *addForm) reset() {
	f.values = models.Candidate{}
	f.errs = validation.FieldErrors{}
}

// edit stores v for field and drops that field's error.
func (f *addForm) edit(field models.Field, v string) {
	f.values.Set(field, v)
	f.errs.Clear(field)
}

// pending lists the fields to prompt: all of them on a fresh form, only the
// failing ones after a rejected submit.
func (f *addForm) pending() []models.Field {
	if f.errs.Empty() {
		return models.Fields
	}
	return f.errs.Fields()
}

// Add runs the add form until a user is added, the form is cancelled, or
// input ends.
func (a *App) Add(ctx context.Context) error {
	a.setFormVisible(true)
	defer a.setFormVisible(false)

	form := newAddForm()
	fmt.Fprintf(a.out, "New user (%s to cancel, %s to reset)\n", cmdCancel, cmdClear)

	for {
		err := a.fillForm(form)
		if errors.Is(err, errFormCancelled) {
			fmt.Fprintln(a.out, "Cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		u, err := a.store.Add(form.values)
		var verr *store.ValidationError
		switch {
		case errors.As(err, &verr):
			form.errs = verr.Fields
			printFieldErrors(a.out, verr.Fields)
			continue
		case err != nil:
			a.logger.Error(ctx, "error adding user", "error", err)
			fmt.Fprintln(a.out, "Could not add user:", err)
			return err
		}

		a.logger.Debug(ctx, "user added", "id", u.ID)
		fmt.Fprintf(a.out, "Added %s (%s)\n", u.FullName(), u.ID)
		return nil
	}
}

// fillForm prompts each pending field. :clear restarts from a blank form.
func (a *App) fillForm(form *addForm) error {
	for restart := true; restart; {
		restart = false
		for _, field := range form.pending() {
			prompt := field.Label()
			if msg := form.errs.Get(field); msg != "" {
				prompt = fmt.Sprintf("%s (%s)", prompt, msg)
			}

			v, err := GetSimpleText(a.scanner, prompt, a.out)
			if err != nil {
				return err
			}

			switch v {
			case cmdCancel:
				return errFormCancelled
			case cmdClear:
				form.reset()
				fmt.Fprintln(a.out, "Form cleared")
				restart = true
			default:
				form.edit(field, v)
				continue
			}
			break
		}
	}
	return nil
}
