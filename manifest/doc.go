// Package manifest reads route declarations from YAML (or JSON) files and
// turns them into a documented router.
//
// A manifest holds the document configuration and the routes to document:
//
//	config:
//	  title: Users
//	  blacklist: [internal]
//	routes:
//	  - method: GET
//	    url: /users/:id
//	    validation:
//	      resources:
//	        id: {isInt: true, isRequired: true}
//	      queries:
//	        fields: "oneof=name email"
//	        tags:
//	          - {type: array}
//	          - {isInt: true}
//	    swagger:
//	      summary: Get a user
//
// A rule is a mapping of rule keys, a validator tag string, or a list of
// either; lists are merged in order. Group and field order is kept as
// written.
package manifest
