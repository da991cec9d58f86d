// Package config loads elt.json, the project file read by the elt command.
//
//	{
//	  "name": "counter",
//	  "dev": {
//	    "host": "localhost",
//	    "port": 8080,
//	    "hotReload": true,
//	    "watch": ["."],
//	    "ignore": ["*.tmp"]
//	  },
//	  "build": {
//	    "package": "./cmd/counter",
//	    "output": "dist",
//	    "tags": ["prod"],
//	    "ldflags": "-s -w",
//	    "title": "Counter"
//	  },
//	  "publish": {
//	    "bucket": "my-site",
//	    "prefix": "counter",
//	    "region": "eu-west-1",
//	    "cacheControl": "max-age=300"
//	  }
//	}
//
// Missing fields take the defaults of New. Command line flags override
// loaded values.
package config
