package cli

import (
	"context"
	"fmt"
	"time"
)

func (a *App) AddScore(ctx context.Context) error {
	staffID, err := GetInt(a.reader, "-Enter staff ID", a.out)
	if err != nil {
		return a.fail(err)
	}
	score, err := GetInt(a.reader, "-Enter score", a.out)
	if err != nil {
		return a.fail(err)
	}

	id, err := a.api.AddScore(ctx, staffID, int(score))
	if err != nil {
		return a.fail(err)
	}
	a.println(fmt.Sprintf("Score added (id %d)", id))
	return nil
}

func (a *App) Scores(ctx context.Context) error {
	staffID, err := GetInt(a.reader, "-Enter staff ID", a.out)
	if err != nil {
		return a.fail(err)
	}

	list, err := a.api.Scores(ctx, staffID)
	if err != nil {
		return a.fail(err)
	}
	if len(list) == 0 {
		a.println("No scores yet")
		return nil
	}
	for _, s := range list {
		fmt.Fprintf(a.out, "%s  %d\n", s.Date.Local().Format(time.DateTime), s.Score)
	}
	return nil
}

func (a *App) Resources(ctx context.Context) error {
	list, err := a.api.LearningResources(ctx)
	if err != nil {
		return a.fail(err)
	}
	for _, r := range list {
		fmt.Fprintf(a.out, "* %s\n  %s\n", r.Title, r.URL)
		if r.Description != nil {
			fmt.Fprintf(a.out, "  %s\n", *r.Description)
		}
	}
	return nil
}

func (a *App) Questions(ctx context.Context) error {
	list, err := a.api.Questions(ctx)
	if err != nil {
		return a.fail(err)
	}
	for i, q := range list {
		fmt.Fprintf(a.out, "%d. %s (answer: %s)\n", i+1, q.Question, yesNo(q.Answer))
		if q.Info != "" {
			fmt.Fprintf(a.out, "   %s\n", q.Info)
		}
		if q.Followup != "" {
			fmt.Fprintf(a.out, "   -> %s (answer: %s)\n", q.Followup, yesNo(q.FollowupAnswer))
		}
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
