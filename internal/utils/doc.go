// Package utils provides branch naming helpers shared by the commands.
package utils
