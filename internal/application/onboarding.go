package application

import (
	"context"

	"github.com/bnema/partners-cli/internal/domain"
)

// OnboardingFlow drives the onboarding wizard and submits its draft.
type OnboardingFlow struct {
	*domain.Onboarding
	profiles *ProfileService
}

func NewOnboardingFlow(initial domain.Builder, profiles *ProfileService) *OnboardingFlow {
	return &OnboardingFlow{Onboarding: domain.NewOnboarding(initial), profiles: profiles}
}

// Finalize submits every onboarding field through the profile update
// workflow. On failure the wizard stays on the last step with its draft.
func (f *OnboardingFlow) Finalize(ctx context.Context) (domain.Session, error) {
	const op = "finish onboarding"

	if f.Complete() {
		return domain.Session{}, domain.ValidationFailed(op, "", "onboarding is already complete")
	}
	if !f.IsLastStep() {
		return domain.Session{}, domain.ValidationFailed(op, "step", "finish every step before submitting")
	}

	session, err := f.profiles.UpdateProfile(ctx, domain.OnboardingPatch(f.Draft()))
	if err != nil {
		return domain.Session{}, err
	}

	f.MarkComplete()
	return session, nil
}
