package cli

import (
	"context"
	"fmt"
)

// pickStore walks the country, company and branch lists and resolves the
// chosen triple to a store id.
func (a *App) pickStore(ctx context.Context) (int64, error) {
	countries, err := a.api.Countries(ctx)
	if err != nil {
		return 0, err
	}
	country, err := Choose(a.reader, "-Choose country", countries, a.out)
	if err != nil {
		return 0, err
	}

	companies, err := a.api.Companies(ctx, country)
	if err != nil {
		return 0, err
	}
	company, err := Choose(a.reader, "-Choose company", companies, a.out)
	if err != nil {
		return 0, err
	}

	branches, err := a.api.Branches(ctx, country, company)
	if err != nil {
		return 0, err
	}
	branch, err := Choose(a.reader, "-Choose branch", branches, a.out)
	if err != nil {
		return 0, err
	}

	return a.api.StoreID(ctx, country, company, branch)
}

func (a *App) Countries(ctx context.Context) error {
	list, err := a.api.Countries(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.printList(list)
	return nil
}

func (a *App) Companies(ctx context.Context) error {
	country, err := GetSimpleText(a.reader, "-Enter country", a.out)
	if err != nil {
		return a.fail(err)
	}
	list, err := a.api.Companies(ctx, country)
	if err != nil {
		return a.fail(err)
	}
	a.printList(list)
	return nil
}

func (a *App) Branches(ctx context.Context) error {
	country, err := GetSimpleText(a.reader, "-Enter country", a.out)
	if err != nil {
		return a.fail(err)
	}
	company, err := GetSimpleText(a.reader, "-Enter company", a.out)
	if err != nil {
		return a.fail(err)
	}
	list, err := a.api.Branches(ctx, country, company)
	if err != nil {
		return a.fail(err)
	}
	a.printList(list)
	return nil
}

func (a *App) StoreID(ctx context.Context) error {
	id, err := a.pickStore(ctx)
	if err != nil {
		return a.fail(err)
	}
	a.println(fmt.Sprintf("Store ID: %d", id))
	return nil
}

func (a *App) printList(list []string) {
	if len(list) == 0 {
		a.println("(none)")
		return
	}
	for _, s := range list {
		a.println(" -", s)
	}
}
