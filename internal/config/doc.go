// Package config defines the format-agnostic model for cast manifests, along
// with the Loader interface for reading them from various sources.
//
// A manifest declares the casts a provider package promises to register. The
// `config.Model` is what the app validates the live cast table against; the
// concrete HCL implementation lives in a separate package.
package config
