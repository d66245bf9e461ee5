// Package shape classifies and combines plain data.
//
// Plain data is what callers hand to vnode: strings, numbers, maps with
// string keys, and slices, usually decoded from JSON or YAML or written
// as Go literals. The classifiers accept any named variant of those kinds
// (a Props map, a []string, a json.Number), so callers never need to
// normalize their values first.
//
// Merge implements the deep merge used to combine a component's default
// props with call-site overrides: maps merge key by key, slices merge index
// by index, everything else is overwritten by the later source.
//
// AttrName normalizes attribute names: it rejects names containing anything
// other than word characters and hyphens, and rewrites camelCase data and
// aria names to their kebab-case form (dataFooBar → data-foo-bar).
package shape
