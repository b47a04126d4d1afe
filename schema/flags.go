package schema

// Flags holds the status and config bits of a statement.
// At most one status bit and one config bit is expected to be set;
// none means the statement does not say.
type Flags uint16

const (
	StatusCurrent Flags = 1 << iota
	StatusDeprecated
	StatusObsolete
	ConfigWrite
	ConfigRead

	StatusMask = StatusCurrent | StatusDeprecated | StatusObsolete
	ConfigMask = ConfigWrite | ConfigRead
)

type Status uint8

const (
	StatusUnset Status = iota
	Current
	Deprecated
	Obsolete
)

func (s Status) String() string {
	switch s {
	case Current:
		return "current"
	case Deprecated:
		return "deprecated"
	case Obsolete:
		return "obsolete"
	default:
		return ""
	}
}

// Status reports the status carried by f. When several status bits
// are set, current wins over deprecated, and deprecated over obsolete.
func (f Flags) Status() Status {
	switch {
	case f&StatusCurrent != 0:
		return Current
	case f&StatusDeprecated != 0:
		return Deprecated
	case f&StatusObsolete != 0:
		return Obsolete
	default:
		return StatusUnset
	}
}

type Config uint8

const (
	ConfigUnset Config = iota
	ConfigTrue
	ConfigFalse
)

func (c Config) String() string {
	switch c {
	case ConfigTrue:
		return "true"
	case ConfigFalse:
		return "false"
	default:
		return ""
	}
}

func (f Flags) Config() Config {
	switch {
	case f&ConfigWrite != 0:
		return ConfigTrue
	case f&ConfigRead != 0:
		return ConfigFalse
	default:
		return ConfigUnset
	}
}

// WithStatus returns f with its status bits replaced by s.
func (f Flags) WithStatus(s Status) Flags {
	f &^= StatusMask
	switch s {
	case Current:
		f |= StatusCurrent
	case Deprecated:
		f |= StatusDeprecated
	case Obsolete:
		f |= StatusObsolete
	}
	return f
}

// WithConfig returns f with its config bits replaced by c.
func (f Flags) WithConfig(c Config) Flags {
	f &^= ConfigMask
	switch c {
	case ConfigTrue:
		f |= ConfigWrite
	case ConfigFalse:
		f |= ConfigRead
	}
	return f
}

// ParseStatus parses the argument of a status statement.
func ParseStatus(s string) (Status, bool) {
	switch s {
	case "current":
		return Current, true
	case "deprecated":
		return Deprecated, true
	case "obsolete":
		return Obsolete, true
	}
	return StatusUnset, false
}
