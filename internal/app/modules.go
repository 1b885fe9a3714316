package app

// coreModules: the definitive list of cast provider modules compiled into
// the traitcast binary. Each registers its casts from init(), so a blank
// import is all the wiring they need.
import (
	_ "github.com/vk/traitcast/modules/note"
	_ "github.com/vk/traitcast/modules/shape"
)
