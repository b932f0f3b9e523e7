// Package core defines the central Kind, Settings, and Flag types,
// and provides the fallback resolver shared by every dispatching
// operation in reshape.
//
// What:
//
//   - Kind names one of the recognized value categories (text, mapping,
//     sequence, set, tuple, int, float, path).
//   - KindOf infers the Kind of a sample value by walking an ordered
//     matcher registry; the first matching entry wins.
//   - Settings holds the raise-on-failure flag, the recursive flag, and
//     the per-kind default values returned when a call degrades instead
//     of failing.
//   - Flag is a tri-state (unset / off / on) used for per-call overrides
//     of the Settings booleans.
//   - Fallback resolves a failed dispatch into either a typed error or
//     the configured default for the relevant Kind.
//   - Apply rewrites every string reachable in a value according to the
//     kind dispatch rules, optionally descending into nested containers.
//
// Why:
//
//   - One shared mechanism: affix, caseconv, split, dedupe and convert
//     all dispatch on Kind and degrade through Fallback, so the policy
//     lives in exactly one place.
//   - Explicit configuration: Settings is an ordinary struct passed by
//     pointer; the process-wide instance behind Defaults() exists only
//     as a convenience for callers that want library-wide behavior.
//
// Concurrency:
//
//	Settings carries no locks. Callers that mutate the Defaults()
//	instance from multiple goroutines must serialize those calls, or
//	treat configuration as immutable after startup.
//
// Errors:
//
//   - ErrUnsupportedType  - no dispatch target matches the value.
//   - ErrInvalidArgument  - malformed parameters (e.g. no kind and no sample).
//   - ErrConversionFailed - a value cannot be coerced to the target kind.
//   - ErrUnknownKind      - a kind has no registered default value.
package core
