package nuclear

import (
	"testing"

	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/option"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttackOutcome_Armed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nuclear")
	defer teardown()
	//
	r := AttackOutcome(Outcome{})
	require.True(t, r.IsSuccess())
	assert.Equal(t, Armed{Nuke: Nuke{}, Target: Target{}}, r.Result())
}

func TestAttackOptional_AbsentSkipsAim(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "nuclear")
	defer teardown()
	//
	aimed := 0
	s := Optional{OnAim: func() option.Option[Target] {
		aimed++
		return option.Some(Target{})
	}}
	assert.True(t, AttackOptional(s).IsNone())
	assert.Zero(t, aimed)
}

func TestAttackOptional_Present(t *testing.T) {
	s := Optional{
		OnArm: func() option.Option[Nuke] { return option.Some(Nuke{}) },
		OnAim: func() option.Option[Target] { return option.Some(Target{}) },
	}
	assert.Equal(t, option.Some(Armed{}), AttackOptional(s))
}

func TestAttack_GenericForwardsFailure(t *testing.T) {
	failed := rop.Fail[Nuke](ErrSystemOffline)
	aimed := 0
	r := Attack[rop.Family,
		rop.Result[Nuke], rop.Result[Target], rop.Result[Armed],
		rop.Shape[Nuke, Armed], rop.Shape[Target, Armed],
	](func() rop.Result[Nuke] { return failed }, func() rop.Result[Target] {
		aimed++
		return rop.Success(Target{})
	})
	require.True(t, r.IsFailure())
	assert.Equal(t, ErrSystemOffline, r.Err())
	assert.Equal(t, failed.Id(), r.Id())
	assert.Zero(t, aimed)
}

func TestStrike_AgreesWithSequencers(t *testing.T) {
	outcome := Outcome{}
	r := StrikeOutcome(outcome)
	require.True(t, r.IsFailure())
	assert.Equal(t, MissedBy(5), r.Err())
	assert.Equal(t, outcome.AttackMonadic().Err(), r.Err())

	optional := Optional{}
	assert.Equal(t, optional.AttackMonadic(), StrikeOptional(optional))

	present := Optional{
		OnArm: func() option.Option[Nuke] { return option.Some(Nuke{}) },
		OnAim: func() option.Option[Target] { return option.Some(Target{}) },
	}
	assert.Equal(t, present.AttackImperative(), StrikeOptional(present))
}

func TestStrike_MatchesThrows(t *testing.T) {
	throws := Throws{}
	_, want := throws.Strike()

	r := StrikeOutcome(throws.Outcome())
	require.True(t, r.IsFailure())
	assert.Equal(t, want, r.Err())
	assert.True(t, StrikeOptional(throws.Optional()).IsNone())

	ready := Throws{
		OnArm: func() (Nuke, error) { return Nuke{}, nil },
		OnAim: func() (Target, error) { return Target{}, nil },
	}
	impacted, err := ready.Strike()
	require.NoError(t, err)

	r = StrikeOutcome(ready.Outcome())
	require.True(t, r.IsSuccess())
	assert.Equal(t, impacted, r.Result())
	assert.Equal(t, option.Some(impacted), StrikeOptional(ready.Optional()))
}
