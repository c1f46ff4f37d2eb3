package nuclear

import (
	"github.com/ib-77/nuclear/pkg/rop/option"
)

// Optional signals failure by absence. By default arm and aim are absent.
type Optional struct {
	OnArm    func() option.Option[Nuke]
	OnAim    func() option.Option[Target]
	OnLaunch func(target Target, nuke Nuke) Impacted
}

func (s Optional) Arm() option.Option[Nuke] {
	if s.OnArm != nil {
		return traceOption("arm", s.OnArm())
	}
	return traceOption("arm", option.None[Nuke]())
}

func (s Optional) Aim() option.Option[Target] {
	if s.OnAim != nil {
		return traceOption("aim", s.OnAim())
	}
	return traceOption("aim", option.None[Target]())
}

func (s Optional) Launch(target Target, nuke Nuke) Impacted {
	if s.OnLaunch != nil {
		return s.OnLaunch(target, nuke)
	}
	return Impacted{}
}

// AttackImperative nests presence checks: aim only once arm is present,
// launch only once both are.
func (s Optional) AttackImperative() option.Option[Impacted] {
	if nuke, ok := s.Arm().Get(); ok {
		if target, ok := s.Aim().Get(); ok {
			return option.Some(s.Launch(target, nuke))
		}
	}
	return option.None[Impacted]()
}

// AttackMonadic is AttackImperative written with FlatMap and Map.
func (s Optional) AttackMonadic() option.Option[Impacted] {
	return option.FlatMap(s.Arm(), func(nuke Nuke) option.Option[Impacted] {
		return option.Map(s.Aim(), func(target Target) Impacted {
			return s.Launch(target, nuke)
		})
	})
}

// AttackImperativeAimFirst checks aim before arm.
func (s Optional) AttackImperativeAimFirst() option.Option[Impacted] {
	if target, ok := s.Aim().Get(); ok {
		if nuke, ok := s.Arm().Get(); ok {
			return option.Some(s.Launch(target, nuke))
		}
	}
	return option.None[Impacted]()
}

// AttackMonadicAimFirst checks aim before arm.
func (s Optional) AttackMonadicAimFirst() option.Option[Impacted] {
	return option.FlatMap(s.Aim(), func(target Target) option.Option[Impacted] {
		return option.Map(s.Arm(), func(nuke Nuke) Impacted {
			return s.Launch(target, nuke)
		})
	})
}

func traceOption[T any](step string, o option.Option[T]) option.Option[T] {
	if o.IsNone() {
		tracer().Infof("optional: %s absent", step)
	} else {
		tracer().Debugf("optional: %s present", step)
	}
	return o
}
