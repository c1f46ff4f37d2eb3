package nuclear

import (
	"github.com/ib-77/nuclear/pkg/rop"
	"github.com/ib-77/nuclear/pkg/rop/monad"
	"github.com/ib-77/nuclear/pkg/rop/option"
)

// Attack is the generic pipeline over one wrapper family F: arm, then aim,
// and pair both values into Armed. aim is only called when arm holds a value.
//
// SN and ST are the shape witnesses of the two steps. Both must report the
// same family F, so a pipeline cannot mix wrapper shapes.
func Attack[F any,
	WN monad.Fallible[Nuke], WT monad.Fallible[Target], WP monad.Fallible[Armed],
	SN monad.Shape[F, Nuke, Armed, WN, WP], ST monad.Shape[F, Target, Armed, WT, WP],
](arm func() WN, aim func() WT) WP {
	return monad.Chain[F, Nuke, Armed, WN, WP, SN](arm(), func(nuke Nuke) WP {
		return monad.Map[F, Target, Armed, WT, WP, ST](aim(), func(target Target) Armed {
			return Armed{Nuke: nuke, Target: target}
		})
	})
}

// Strike continues Attack into launch, within the same family F.
func Strike[F any,
	WN monad.Fallible[Nuke], WT monad.Fallible[Target], WP monad.Fallible[Armed], WI monad.Fallible[Impacted],
	SN monad.Shape[F, Nuke, Armed, WN, WP], ST monad.Shape[F, Target, Armed, WT, WP],
	SL monad.Shape[F, Armed, Impacted, WP, WI],
](arm func() WN, aim func() WT, launch func(target Target, nuke Nuke) WI) WI {
	armed := Attack[F, WN, WT, WP, SN, ST](arm, aim)
	return monad.Chain[F, Armed, Impacted, WP, WI, SL](armed, func(a Armed) WI {
		tracer().Debugf("strike: launching")
		return launch(a.Target, a.Nuke)
	})
}

// AttackOptional instantiates Attack with the Option family.
func AttackOptional(s Optional) option.Option[Armed] {
	return Attack[option.Family,
		option.Option[Nuke], option.Option[Target], option.Option[Armed],
		option.Shape[Nuke, Armed], option.Shape[Target, Armed],
	](s.Arm, s.Aim)
}

// AttackOutcome instantiates Attack with the Result family.
func AttackOutcome(s Outcome) rop.Result[Armed] {
	return Attack[rop.Family,
		rop.Result[Nuke], rop.Result[Target], rop.Result[Armed],
		rop.Shape[Nuke, Armed], rop.Shape[Target, Armed],
	](s.Arm, s.Aim)
}

// StrikeOptional instantiates Strike with the Option family. Launch cannot
// fail in that style, its value is wrapped as present.
func StrikeOptional(s Optional) option.Option[Impacted] {
	return Strike[option.Family,
		option.Option[Nuke], option.Option[Target], option.Option[Armed], option.Option[Impacted],
		option.Shape[Nuke, Armed], option.Shape[Target, Armed], option.Shape[Armed, Impacted],
	](s.Arm, s.Aim, func(target Target, nuke Nuke) option.Option[Impacted] {
		return option.Some(s.Launch(target, nuke))
	})
}

// StrikeOutcome instantiates Strike with the Result family.
func StrikeOutcome(s Outcome) rop.Result[Impacted] {
	return Strike[rop.Family,
		rop.Result[Nuke], rop.Result[Target], rop.Result[Armed], rop.Result[Impacted],
		rop.Shape[Nuke, Armed], rop.Shape[Target, Armed], rop.Shape[Armed, Impacted],
	](s.Arm, s.Aim, s.Launch)
}
