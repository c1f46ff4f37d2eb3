package nuclear

import (
	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/chain"
	"github.com/ib-77/nuclear/pkg/rop/solo"
)

// Outcome returns explicit success/failure values. By default arm and aim
// succeed and launch misses by 5 meters.
type Outcome struct {
	OnArm    func() rop.Result[Nuke]
	OnAim    func() rop.Result[Target]
	OnLaunch func(target Target, nuke Nuke) rop.Result[Impacted]
}

func (s Outcome) Arm() rop.Result[Nuke] {
	if s.OnArm != nil {
		return traceResult("arm", s.OnArm())
	}
	return traceResult("arm", rop.Success(Nuke{}))
}

func (s Outcome) Aim() rop.Result[Target] {
	if s.OnAim != nil {
		return traceResult("aim", s.OnAim())
	}
	return traceResult("aim", rop.Success(Target{}))
}

func (s Outcome) Launch(target Target, nuke Nuke) rop.Result[Impacted] {
	if s.OnLaunch != nil {
		return traceResult("launch", s.OnLaunch(target, nuke))
	}
	return traceResult("launch", rop.Fail[Impacted](MissedBy(5)))
}

// AttackPatternMatching branches on the shape of every step result.
func (s Outcome) AttackPatternMatching() rop.Result[Impacted] {
	switch nuke := s.Arm(); {
	case nuke.IsSuccess():
		switch target := s.Aim(); {
		case target.IsSuccess():
			return s.Launch(target.Result(), nuke.Result())
		default:
			return rop.FailFrom[Target, Impacted](target)
		}
	default:
		return rop.FailFrom[Nuke, Impacted](nuke)
	}
}

// AttackMonadic is AttackPatternMatching written with nested Switch.
func (s Outcome) AttackMonadic() rop.Result[Impacted] {
	return solo.Switch(s.Arm(), func(nuke Nuke) rop.Result[Impacted] {
		return solo.Switch(s.Aim(), func(target Target) rop.Result[Impacted] {
			return s.Launch(target, nuke)
		})
	})
}

// AttackFluent is AttackMonadic written with the fluent chain.
func (s Outcome) AttackFluent() rop.Result[Impacted] {
	return chain.Then(chain.Start(s.Arm()), func(nuke Nuke) rop.Result[Impacted] {
		return chain.Then(chain.Start(s.Aim()), func(target Target) rop.Result[Impacted] {
			return s.Launch(target, nuke)
		}).Result()
	}).Result()
}

func traceResult[T any](step string, r rop.Result[T]) rop.Result[T] {
	return solo.DoubleTee(r,
		func(T) {
			tracer().Debugf("outcome: %s succeeded [%s]", step, r.Id())
		},
		func(err error) {
			tracer().Infof("outcome: %s failed: %v [%s]", step, err, r.Id())
		})
}
