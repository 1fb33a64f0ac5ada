package internal

// EnvPrefix is a prefix of ENV variables related
// to the meshconv configuration.
const EnvPrefix = "meshconv"

// EnvSeparator is a section separator in ENV variables.
const EnvSeparator = "_"
