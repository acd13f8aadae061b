package common

// GeneratedHeader is the first line of every generated file. It matches the
// convention recognised by go vet and editors. The tool version is left out
// so that output only depends on the descriptors.
const GeneratedHeader = "// Code generated by ts3gen. DO NOT EDIT."
