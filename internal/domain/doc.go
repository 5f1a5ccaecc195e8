// Package domain contains the core business entities, value objects, and
// domain logic of the application: users who sign up and the blog posts they
// author. It is independent of any specific infrastructure or delivery
// mechanism.
package domain
