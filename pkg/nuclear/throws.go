package nuclear

import (
	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/option"
)

// Throws propagates failures as returned errors. By default arm fails with
// ErrSystemOffline and aim with ErrRotationNeedsOil.
type Throws struct {
	OnArm    func() (Nuke, error)
	OnAim    func() (Target, error)
	OnLaunch func(target Target, nuke Nuke) Impacted
}

func (s Throws) Arm() (Nuke, error) {
	if s.OnArm != nil {
		return s.OnArm()
	}
	return Nuke{}, ErrSystemOffline
}

func (s Throws) Aim() (Target, error) {
	if s.OnAim != nil {
		return s.OnAim()
	}
	return Target{}, ErrRotationNeedsOil
}

func (s Throws) Launch(target Target, nuke Nuke) Impacted {
	if s.OnLaunch != nil {
		return s.OnLaunch(target, nuke)
	}
	return Impacted{}
}

// Attack arms then aims. The first error is returned as is and aim is
// skipped when arm fails.
func (s Throws) Attack() (Armed, error) {
	nuke, err := s.Arm()
	if err != nil {
		tracer().Infof("throws: arm failed: %v", err)
		return Armed{}, err
	}
	target, err := s.Aim()
	if err != nil {
		tracer().Infof("throws: aim failed: %v", err)
		return Armed{}, err
	}
	tracer().Debugf("throws: armed")
	return Armed{Nuke: nuke, Target: target}, nil
}

// Strike runs Attack and launches on success.
func (s Throws) Strike() (Impacted, error) {
	armed, err := s.Attack()
	if err != nil {
		return Impacted{}, err
	}
	return s.Launch(armed.Target, armed.Nuke), nil
}

// Outcome adapts the steps of s to an Outcome; every error becomes the
// failure of the corresponding step.
func (s Throws) Outcome() Outcome {
	return Outcome{
		OnArm: func() rop.Result[Nuke] {
			nuke, err := s.Arm()
			return rop.FromTuple(nuke, err)
		},
		OnAim: func() rop.Result[Target] {
			target, err := s.Aim()
			return rop.FromTuple(target, err)
		},
		OnLaunch: func(target Target, nuke Nuke) rop.Result[Impacted] {
			return rop.Success(s.Launch(target, nuke))
		},
	}
}

// Optional adapts the steps of s to an Optional. Reasons are dropped.
func (s Throws) Optional() Optional {
	return Optional{
		OnArm: func() option.Option[Nuke] {
			nuke, err := s.Arm()
			return option.FromOk(nuke, err == nil)
		},
		OnAim: func() option.Option[Target] {
			target, err := s.Aim()
			return option.FromOk(target, err == nil)
		},
		OnLaunch: s.Launch,
	}
}
