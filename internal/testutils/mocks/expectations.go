// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/army-rater/internal/entities/army"
	"github.com/KirkDiggler/army-rater/internal/repositories/armies"
	armiesmock "github.com/KirkDiggler/army-rater/internal/repositories/armies/mock"
)

// ExpectArmyLoad expects one Get of existing and returns a copy of it
func ExpectArmyLoad(ctx context.Context, repo *armiesmock.MockRepository, existing *army.Army) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, armies.GetInput{ID: existing.ID}).
		Return(&armies.GetOutput{Army: existing.Clone()}, nil)
}

// ExpectArmyRoundTrip expects a load of existing followed by an Update that
// stores whatever it is given. The returned call is the Update.
func ExpectArmyRoundTrip(ctx context.Context, repo *armiesmock.MockRepository, existing *army.Army) *gomock.Call {
	ExpectArmyLoad(ctx, repo, existing)
	return repo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input armies.UpdateInput) (*armies.UpdateOutput, error) {
			return &armies.UpdateOutput{Army: input.Army.Clone()}, nil
		})
}
