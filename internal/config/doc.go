// Package config loads seedsearch inputs from outside the process: criteria
// files written in YAML and runtime settings taken from SEEDSEARCH_*
// environment variables.
//
// A criteria file names everything a WonderCard search needs:
//
//	version: black-eng
//	mac: 00:09:bf:0a:1b:2c
//	from: 2011-03-06T10:00:00Z
//	to:   2011-03-06T10:00:59Z
//	buttons: [none, "A+Start"]
//	timer0: {low: 0xc79, high: 0xc7a}
//	vcount: {low: 0x60, high: 0x60}
//	vframe: {low: 5, high: 5}
//	frames: {min: 0, max: 999}
//	tid: 12345
//	sid: 54321
//	nature: timid
//	min_ivs: 31/x/31/31/31/31
//	hidden_power: {type: ice, min_power: 70}
//
// Unknown keys are rejected. File.Criteria converts a decoded file into a
// validated wondercard.Criteria.
package config
