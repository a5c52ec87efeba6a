// Package file loads application configuration and prompt files from the
// pulse-qa config directory (~/.pulse-qa by default).
package file
