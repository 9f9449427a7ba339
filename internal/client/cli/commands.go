package cli

import (
	"context"
	"fmt"
)

func (a *App) List(ctx context.Context) error {
	renderTable(a.out, a.store.Displayed(), termWidth())
	return nil
}

// Search filters the displayed list. An empty term shows every user.
func (a *App) Search(ctx context.Context, term string) error {
	a.store.Search(term)
	master, displayed := a.store.Len()
	if term == "" {
		fmt.Fprintf(a.out, "Search cleared, %d users\n", master)
	} else {
		fmt.Fprintf(a.out, "%d of %d users match %q\n", displayed, master, term)
	}
	return a.List(ctx)
}

// Refresh reloads the list in the background. The search term is reset by
// the store when the new list arrives.
func (a *App) Refresh(ctx context.Context) error {
	fmt.Fprintln(a.out, "Refreshing...")
	a.startLoad(ctx)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	if !a.store.Delete(id) {
		fmt.Fprintf(a.out, "No user with id %s\n", id)
		return nil
	}
	a.logger.Debug(ctx, "user deleted", "id", id)
	fmt.Fprintf(a.out, "Deleted %s\n", id)
	return nil
}
