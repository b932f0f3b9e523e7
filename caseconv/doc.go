// Package caseconv converts identifiers between snake_case and
// CapitalCase.
//
// What:
//
//   - ToCapital turns "snake_case" into "SnakeCase".
//   - ToSnake turns "CapitalCase" (or "camelCase") into "capital_case",
//     detecting word boundaries through character-class transitions, so
//     acronym runs like "HTTPServer" become "http_server".
//   - Capitalify and Snakify apply the conversion across kinds the same
//     way package affix does: text directly, sequence/set/tuple
//     elements, mapping keys; recursion descends nested containers.
//
// Why:
//
//   - Bridging naming conventions between configuration keys, struct
//     fields and wire formats.
//
// Complexity: O(len(text)) per string.
package caseconv
