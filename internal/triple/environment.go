package triple

// Environment is the ABI environment on top of the operating system. It is
// often omitted, in which case the operating system implies it.
type Environment uint8

const (
	EnvUnknown Environment = iota
	EnvAndroid
	EnvAndroideabi
	EnvEabi
	EnvEabihf
	EnvGnu
	EnvGnuabi64
	EnvGnueabi
	EnvGnueabihf
	EnvGnuspe
	EnvGnux32
	EnvMusl
	EnvMusleabi
	EnvMusleabihf
	EnvMsvc
	EnvUclibc
	EnvSgx

	envCount
)

var envNames = [envCount]string{
	EnvUnknown:     "unknown",
	EnvAndroid:     "android",
	EnvAndroideabi: "androideabi",
	EnvEabi:        "eabi",
	EnvEabihf:      "eabihf",
	EnvGnu:         "gnu",
	EnvGnuabi64:    "gnuabi64",
	EnvGnueabi:     "gnueabi",
	EnvGnueabihf:   "gnueabihf",
	EnvGnuspe:      "gnuspe",
	EnvGnux32:      "gnux32",
	EnvMusl:        "musl",
	EnvMusleabi:    "musleabi",
	EnvMusleabihf:  "musleabihf",
	EnvMsvc:        "msvc",
	EnvUclibc:      "uclibc",
	EnvSgx:         "sgx",
}

var envByName = lookupTable[Environment](envNames[:])

func (e Environment) String() string { return nameOf(envNames[:], e, "Environment") }

// ParseEnvironment recognises an environment name.
func ParseEnvironment(s string) (Environment, bool) {
	e, ok := envByName[s]
	return e, ok
}
