// Package ivs implements the six-dimensional statistic vector (IVs) examined
// by frame filters, together with the two values derived from it: the hidden
// type and the hidden power.
//
// What
//
//   - IVs packs six 5-bit components (0..31) into one uint32 using the
//     in-game layout: HP, AT, DF in the low half-word and SP, SA, SD in the
//     high half-word. Max (0x7FFF7FFF) is the all-31 vector.
//   - BetterThanOrEqual / WorseThanOrEqual give the componentwise partial order
//     used for minimum and maximum bounds.
//   - HiddenType and HiddenPower are pure functions of the vector:
//     the type comes from the low bit of each component, the power from the
//     second-lowest bit, each weighted HP=1, AT=2, DF=4, SP=8, SA=16, SD=32.
//   - Element enumerates the 16 hidden types plus the Any and Unknown
//     wildcards. The zero value is Unknown ("no hidden power filter").
//
// Complexity
//
//   - Every operation is O(1); IVs is a plain value, safe to copy and share.
//
// Usage
//
//	v := ivs.New(31, 31, 31, 31, 31, 30)
//	v.HiddenType()  // ivs.Ice
//	v.HiddenPower() // 70
//
//	lo, _ := ivs.ParseMin("31/x/31/31/31/31")
//	v.BetterThanOrEqual(lo) // true
//
// Errors
//
//   - ErrMalformed     if a textual vector does not have six components.
//   - ErrOutOfRange    if a component lies outside 0..31.
//   - ErrUnknownElement if an element name is not recognized.
package ivs
