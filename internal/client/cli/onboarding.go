package cli

import (
	"context"
	"fmt"
)

func (a *App) onboardingCommands() []command {
	return []command{
		{name: "next", aliases: []string{"n"}, usage: "next", run: a.nextSlide},
		{name: "prev", aliases: []string{"p"}, usage: "prev", run: a.prevSlide},
		{name: "start", aliases: []string{"skip"}, usage: "start", run: a.finishOnboarding},
	}
}

func (a *App) showSlide() {
	a.mu.Lock()
	i := a.slide
	a.mu.Unlock()
	s := onboardingSlides[i]
	printlnFn(fmt.Sprintf("(%d/%d) %s", i+1, len(onboardingSlides), s.title))
	printlnFn(s.body)
	if i == len(onboardingSlides)-1 {
		printlnFn("Type 'start' to get started.")
	} else {
		printlnFn("Type 'next' to continue or 'skip' to get started.")
	}
}

func (a *App) nextSlide(ctx context.Context, _ []string) error {
	a.mu.Lock()
	last := a.slide >= len(onboardingSlides)-1
	if !last {
		a.slide++
	}
	a.mu.Unlock()
	if last {
		return a.finishOnboarding(ctx, nil)
	}
	a.showSlide()
	return nil
}

func (a *App) prevSlide(context.Context, []string) error {
	a.mu.Lock()
	if a.slide > 0 {
		a.slide--
	}
	a.mu.Unlock()
	a.showSlide()
	return nil
}

func (a *App) finishOnboarding(ctx context.Context, _ []string) error {
	if err := a.account.CompleteOnboarding(ctx); err != nil {
		return err
	}
	return a.callbacks.OnOnboardingComplete(ctx)
}
