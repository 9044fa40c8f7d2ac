// Package ruby provides version lookups for RubyGems.
//
// [Gemfile] recognizes the common declaration shapes:
//
//	gem 'rails', '~> 7.0'   # quoted name and version
//	gem 'pg', ~> 1.5        # unquoted pessimistic version
//	gem sidekiq, '7.2.0'    # unquoted name
//	gem 'bootsnap'          # no version, reported as "*"
//
// Comment lines are skipped and the first declaration of a gem wins.
//
// [Language] wires the parser to the [rubygems] client, which reads version
// from https://rubygems.org/api/v1/gems/{name}.json.
//
// [rubygems]: github.com/matzehuels/versionlens/pkg/integrations/rubygems
package ruby
