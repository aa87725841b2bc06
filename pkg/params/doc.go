// Package params turns an action's parameter tree into the flat list of
// module options a generated plugin declares.
//
// The pipeline is three pure steps: Flatten walks the tree depth-first and
// runs Classify on every node, Classify derives the option name and kinds of
// a leaf (or reports it as a group or skipped), and Aggregate folds the
// results into code fragments plus an ordered documentation mapping.
//
// Names ending in "_id" become "entity" options and names ending in "_ids"
// become "entity_list" options, with the suffix removed. Stripping can make two
// leaves collide ("domain_id" and "domain"); both code fragments are kept but
// the documentation mapping keeps only the last record for the name.
package params
