package config

import "testing"

func TestConstants(t *testing.T) {
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if DBFileName == "" {
		t.Fatalf("DBFileName should not be empty")
	}
	if PrinceTimeout <= 0 {
		t.Fatalf("PrinceTimeout must be positive")
	}
	if MaxPassphraseAttempts <= 0 {
		t.Fatalf("MaxPassphraseAttempts must be positive")
	}
	if MinOnboardingGoals < 1 || MaxOnboardingGoals < MinOnboardingGoals {
		t.Fatalf("unexpected onboarding limits %d..%d", MinOnboardingGoals, MaxOnboardingGoals)
	}
}
