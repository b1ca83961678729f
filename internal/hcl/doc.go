// Package hcl reads tag cloud run settings from an HCL answers file, so a run
// can be scripted instead of prompted.
//
//	input  = "notes/meeting.txt"
//	output = "${input_stem}.html"
//	count  = 50
//
// The output attribute is an expression evaluated with the variables input
// (the input path as written), input_stem (its base name without extension)
// and env (the process environment).
package hcl
