package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type PlatformTag struct{}

var PlatformTagComponent = NewComponent[PlatformTag]()
