/*
Package tripcheck provides an offline trip-packing checklist tool.

Tripcheck keeps packing checklists for upcoming trips, tracks packing
progress per trip, and awards achievements as checklists are created and
completed. All data lives in local JSON snapshots; the tool works fully
offline and has no network surface.

# Usage

Basic usage:

	tripcheck trip add "Paris"            # Create a checklist
	tripcheck item add Paris "Passport"   # Add an item
	tripcheck item check Paris Passport   # Tick it off
	tripcheck trip list                   # Show progress
	tripcheck achievements                # Show unlocked awards

For more information, see the documentation at https://github.com/tripcheck/tripcheck
*/
package tripcheck

// Version is the current version of Tripcheck
const Version = "1.0.0"

// BuildDate is set at build time
var BuildDate string

// GitCommit is set at build time
var GitCommit string
