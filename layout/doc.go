// Package layout flows a parsed document onto pages.
//
// Layout takes a bhumi.Document, a Geometry and a Measurer and produces
// page-relative draw instructions: text boxes with resolved font faces, and
// primitive boxes for rules, table grids and shading. It performs greedy
// word wrapping, page breaking with repeated table headers, and heading
// orphan avoidance. Layout never fails; content that cannot wrap is drawn
// overflowing and reported as a warning.
package layout
