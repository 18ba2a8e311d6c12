// Package domain defines the core business entities of the classifieds
// service, users and ads, along with their validation rules and errors.
//
// Entities are plain values. Persistence lives behind the interfaces in
// package store and password hashing in package service/auth.
package domain
