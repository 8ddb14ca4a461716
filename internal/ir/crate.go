package ir

// CrateNum identifies one crate inside a compilation session. The numbering
// is session-local and unstable across runs.
type CrateNum uint32

// LocalCrate is the crate currently being compiled.
const LocalCrate CrateNum = 0
