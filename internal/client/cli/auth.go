package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/signon/internal/client/models"
	"github.com/dmitrijs2005/signon/internal/client/services"
	"github.com/dmitrijs2005/signon/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

func (a *App) authCommands() []command {
	return []command{
		{name: "login", aliases: []string{"signin"}, usage: "login", run: a.Login},
		{name: "signup", aliases: []string{"register"}, usage: "signup", run: a.SignUp},
	}
}

func (a *App) profileSetupCommands() []command {
	return []command{
		{name: "setup", usage: "setup", run: a.SetupProfile},
	}
}

// Login prompts for credentials, stores the new user and advances the gate.
func (a *App) Login(ctx context.Context, _ []string) error {
	email, err := getSimpleText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}

	u, err := a.account.Login(ctx, services.LoginForm{Email: email, Password: password})
	if err != nil {
		return err
	}
	printlnFn("Signed in as " + u.Email)
	return a.callbacks.OnAuthenticated(ctx)
}

// SignUp prompts for the account form; the password must be typed twice.
func (a *App) SignUp(ctx context.Context, _ []string) error {
	var form services.SignUpForm
	var err error

	if form.Name, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Phone, err = getSimpleText(a.reader, "Phone (optional, e.g. +919876543210)", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword(a.reader, "Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword(a.reader, "Confirm password", a.out); err != nil {
		return err
	}

	u, err := a.account.SignUp(ctx, form)
	if err != nil {
		return err
	}
	printlnFn("Welcome, " + u.Name + "!")
	return a.callbacks.OnAuthenticated(ctx)
}

// SetupProfile collects the profile and marks it complete.
func (a *App) SetupProfile(ctx context.Context, _ []string) error {
	p, err := a.promptProfile(models.Profile{})
	if err != nil {
		return err
	}
	if _, err := a.account.CompleteProfile(ctx, p); err != nil {
		return err
	}
	return a.callbacks.OnProfileComplete(ctx)
}

// promptProfile asks for every profile field. Blank answers keep cur.
func (a *App) promptProfile(cur models.Profile) (models.Profile, error) {
	p := cur
	text := func(prompt string, dst *string) error {
		v, err := getSimpleText(a.reader, withCurrent(prompt, *dst), a.out)
		if err == nil && v != "" {
			*dst = v
		}
		return err
	}

	if err := text("ISL name (how you want to be called)", &p.ISLName); err != nil {
		return p, err
	}
	age, err := getSimpleText(a.reader, "Age (optional)", a.out)
	if err != nil {
		return p, err
	}
	if age != "" {
		n, err := strconv.Atoi(age)
		if err != nil {
			return p, common.NewValidationError("age", "must be a number")
		}
		p.Age = n
	}
	if err := text("Location (optional)", &p.Location); err != nil {
		return p, err
	}
	if err := text("Occupation (optional)", &p.Occupation); err != nil {
		return p, err
	}
	if err := text("ISL level: beginner, intermediate or advanced (optional)", &p.ISLLevel); err != nil {
		return p, err
	}
	p.ISLLevel = strings.ToLower(p.ISLLevel)
	if err := text("Preferred language: english, hindi, tamil, telugu, bengali, marathi (optional)", &p.PreferredLanguage); err != nil {
		return p, err
	}
	p.PreferredLanguage = strings.ToLower(p.PreferredLanguage)
	bio, err := getMultiline(a.reader, "About you (optional)", a.out)
	if err != nil {
		return p, err
	}
	if bio != "" {
		p.Bio = bio
	}
	return p, nil
}

func withCurrent(prompt, cur string) string {
	if cur == "" {
		return prompt
	}
	return prompt + " [" + cur + "]"
}
