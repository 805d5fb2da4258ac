// Package config provides configuration loading, merging, and validation
// facilities for the news-radar tooling.
//
// The project configuration is a [Tree] resolved by [TieredLoader] from
// three sources in the following priority order (later sources override
// earlier ones key by key):
//  1. config/config.yaml
//  2. config/hide_config.yaml
//  3. environment variables listed in [EnvBindings]
//
// [SettingsFromTree] and [RemoteStorageFromTree] derive typed views of a
// resolved tree. Command runtime options are assembled separately by
// [GetOptions] from environment variables and command-line flags.
package config
