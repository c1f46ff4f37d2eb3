package nuclear

type Nuke struct{}

type Target struct{}

type Impacted struct{}

// Armed is what the generic pipeline yields once both arm and aim succeeded.
type Armed struct {
	Nuke   Nuke
	Target Target
}
