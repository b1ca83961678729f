// Package config defines the values a tag cloud run needs and the Source
// interface for obtaining them.
//
// Concrete sources live elsewhere: interactive prompting in the cli package
// and HCL answer files in the hcl package.
package config
