// Package integrationtests runs end-to-end tag cloud scenarios through the
// testutil harness.
package integrationtests
