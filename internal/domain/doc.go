// Package domain contains the core entities of the news service (topics,
// users, articles and comments) together with the validation rules that do
// not need a database round trip, such as the article listing whitelist.
package domain
