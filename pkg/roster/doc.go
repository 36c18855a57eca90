// Package roster defines the employee records that feed the org chart.
//
// A [Roster] is an ordered snapshot of [Employee] values. Order matters: the
// chart builder groups direct reports in roster order, so two loads of the
// same file always produce the same chart.
//
// # Loading
//
// Rosters are read from YAML or JSON files. Both accept either a bare list
// of employees or an object with an "employees" key:
//
//	employees:
//	  - id: "6"
//	    firstName: Robert
//	    lastName: Kim
//	    role: CEO
//	    department: Executive
//	  - id: "4"
//	    managerId: "6"
//	    firstName: Alex
//	    lastName: Thompson
//	    status: active
//
// [Load] validates at the boundary: IDs must be non-empty and unique, the
// status must be one of active, inactive, pending or onboarding, and
// onboarding progress must lie in 0-100. Manager references are NOT checked
// here; dangling references and cycles are the chart builder's concern.
//
// # Filtering
//
// [Filter] narrows a roster by department, status and a free-text search,
// mirroring the directory filters of the HR dashboard. Filtering happens
// before layout, so filtered-out managers turn their reports into orphans.
package roster
