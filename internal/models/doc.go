// Package models defines the core domain models for the recipe-sharing
// service.
//
// # Models
//
//   - User: a registered account, identified by username
//   - Recipe: a recipe posted by a user, identified by a generated UUID
//
// Favorites are not a model of their own: they are a relation between a
// User and a Recipe, owned entirely by the storage layer as a join table
// and surfaced to callers as ordered []Recipe.
//
// # Design Principles
//
//  1. Models carry no behavior; stores and services operate on them.
//  2. Relationships use ID/username strings instead of pointers to avoid
//     circular references.
//  3. Secrets (password hashes) never serialize into API responses.
package models
