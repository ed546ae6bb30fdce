package engine

// Reserved predefined keys, installed by the runtime at subsystem
// construction and protected from user-initiated free unless the
// caller explicitly opts in. These mirror the MPI-defined predefined
// attribute keys; ModelKey is the highest reserved index, so the
// reserved range is [0, ModelKey].
const (
	TagUBKey HostKeyConst = iota
	HostKey
	IOKey
	WtimeIsGlobalKey
	AppnumKey
	LastUsedCodeKey
	UniverseSizeKey
	WinBaseKey
	WinSizeKey
	WinDispUnitKey
	WinCreateFlavorKey
	ModelKey
)

// HostKeyConst is the type of the reserved predefined key constants.
// It is a plain int under the hood; keys flow through the rest of the
// engine's API as int.
type HostKeyConst = int

// reservedKeyNames allows the CLI and tests to print a reserved key's
// MPI name instead of a bare index.
var reservedKeyNames = map[int]string{
	TagUBKey:           "TAG_UB",
	HostKey:            "HOST",
	IOKey:              "IO",
	WtimeIsGlobalKey:   "WTIME_IS_GLOBAL",
	AppnumKey:          "APPNUM",
	LastUsedCodeKey:    "LASTUSEDCODE",
	UniverseSizeKey:    "UNIVERSE_SIZE",
	WinBaseKey:         "WIN_BASE",
	WinSizeKey:         "WIN_SIZE",
	WinDispUnitKey:     "WIN_DISP_UNIT",
	WinCreateFlavorKey: "WIN_CREATE_FLAVOR",
	ModelKey:           "WIN_MODEL",
}

// ReservedKeyName returns the MPI-defined name for a reserved key, or
// "" if key is not one of the reserved predefined keys.
func ReservedKeyName(key int) string {
	return reservedKeyNames[key]
}
