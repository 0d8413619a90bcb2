// Package config provides configuration parsing for topus projects.
//
// The configuration is stored in topus.json at the project root.
// This package handles loading, saving, and validating configuration.
// Every field is optional.
//
// # Configuration File Structure
//
//	{
//	  "name": "docs",
//	  "output": {
//	    "dir": "dist",
//	    "file": "index.html",
//	    "mode": "0644"
//	  },
//	  "preview": {
//	    "host": "localhost",
//	    "port": 3000,
//	    "reload": true,
//	    "pollInterval": "500ms"
//	  },
//	  "s3": {
//	    "bucket": "my-site",
//	    "region": "eu-west-1",
//	    "prefix": "docs/"
//	  },
//	  "log": {
//	    "level": "info",
//	    "format": "text"
//	  },
//	  "metrics": {
//	    "namespace": "topus"
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Preview:", cfg.PreviewURL())
package config
