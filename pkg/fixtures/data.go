package fixtures

// repoConfigs returns a fresh copy of the fixture catalog. Returning new
// literals on every call keeps the package free of shared mutable state;
// Load normalizes its private copy before anything else can see it.
//
// Path arguments below are written with forward slashes and rewritten to
// the native separator at load time. ToVerify globs keep forward slashes.
func repoConfigs() []RepoConfig {
	return []RepoConfig{
		{
			GitURL: "https://github.com/trailheadapps/dreamhouse-lwc.git",
			Deploy: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
					{
						Args:     "force-app/main/default/classes",
						ToVerify: []string{"force-app/main/default/classes/*"},
					},
					{
						Args: "force-app/main/default/classes,force-app/main/default/objects",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/objects/*",
						},
					},
					{
						Args: "\"force-app/main/default/classes, force-app/main/default/permissionsets\"",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/permissionsets/*",
						},
					},
				},
				ModeMetadata: {
					{
						Args:     "ApexClass",
						ToVerify: []string{"force-app/main/default/classes/*"},
					},
					{
						Args:     "ApexClass:GeocodingService",
						ToVerify: []string{"force-app/main/default/classes/GeocodingService.cls"},
					},
					{
						Args: "ApexClass,CustomObject",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/objects/*",
						},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
					{
						Args: "force-app/main/default/classes,force-app/main/default/lwc",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/lwc/**/*",
						},
					},
				},
				ModeTestLevel: {
					{
						Args:           "RunSpecifiedTests",
						SpecifiedTests: []string{"GeocodingServiceTest"},
						ToVerify:       []string{"force-app/main/default/classes/*"},
					},
					{
						Args:           "RunSpecifiedTests",
						SpecifiedTests: []string{"GeocodingServiceTest", "PropertyControllerTest"},
						ToVerify:       []string{"force-app/main/default/classes/*"},
					},
				},
			},
			Retrieve: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app/main/default/objects",
						ToVerify: []string{"force-app/main/default/objects/*"},
					},
					{
						Args: "force-app/main/default/classes,force-app/main/default/permissionsets",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/permissionsets/*",
						},
					},
				},
				ModeMetadata: {
					{
						Args:     "ApexClass",
						ToVerify: []string{"force-app/main/default/classes/*"},
					},
					{
						Args:     "CustomObject:Property__c",
						ToVerify: []string{"force-app/main/default/objects/Property__c/**/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
			},
			Convert: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/classes/*", "metadataPackage_*/objects/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "ApexClass",
						ToVerify: []string{"metadataPackage_*/classes/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/package.xml"},
					},
				},
			},
		},
		{
			GitURL: "https://github.com/trailheadapps/ebikes-lwc.git",
			Deploy: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
					{
						Args:     "force-app/main/default/lwc",
						ToVerify: []string{"force-app/main/default/lwc/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "LightningComponentBundle",
						ToVerify: []string{"force-app/main/default/lwc/**/*"},
					},
					{
						Args: "ApexClass,LightningComponentBundle",
						ToVerify: []string{
							"force-app/main/default/classes/*",
							"force-app/main/default/lwc/**/*",
						},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
				ModeTestLevel: {
					{
						Args:           "RunSpecifiedTests",
						SpecifiedTests: []string{"OrderControllerTest"},
						ToVerify:       []string{"force-app/main/default/classes/*"},
					},
				},
			},
			Retrieve: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app/main/default/lwc",
						ToVerify: []string{"force-app/main/default/lwc/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "ApexClass:OrderController",
						ToVerify: []string{"force-app/main/default/classes/OrderController.cls"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
			},
			Convert: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/lwc/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "LightningComponentBundle",
						ToVerify: []string{"metadataPackage_*/lwc/**/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/package.xml"},
					},
				},
			},
		},
		{
			GitURL: "https://github.com/salesforcecli/sample-project-multiple-packages.git",
			Deploy: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args: "force-app,my-app",
						ToVerify: []string{
							"force-app/main/default/**/*",
							"my-app/objects/*",
						},
					},
					{
						Args: "\"force-app, my-app, foo-bar\"",
						ToVerify: []string{
							"force-app/main/default/**/*",
							"my-app/objects/*",
							"foo-bar/app/**/*",
						},
					},
					{
						Args:     "foo-bar/app/lwc",
						ToVerify: []string{"foo-bar/app/lwc/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args: "CustomObject",
						ToVerify: []string{
							"force-app/main/default/objects/*",
							"my-app/objects/*",
						},
					},
				},
				ModeManifest: {
					{
						Args: "force-app,my-app,foo-bar",
						ToVerify: []string{
							"force-app/main/default/**/*",
							"my-app/objects/*",
							"foo-bar/app/**/*",
						},
					},
				},
				ModeTestLevel: {},
			},
			Retrieve: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "my-app/objects",
						ToVerify: []string{"my-app/objects/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "CustomLabels",
						ToVerify: []string{"force-app/main/default/labels/*"},
					},
				},
				ModeManifest: {
					{
						Args: "force-app,my-app",
						ToVerify: []string{
							"force-app/main/default/**/*",
							"my-app/objects/*",
						},
					},
				},
			},
			Convert: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app,my-app",
						ToVerify: []string{"metadataPackage_*/objects/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "CustomObject",
						ToVerify: []string{"metadataPackage_*/objects/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/package.xml"},
					},
				},
			},
		},
		{
			// Large app; kept in the catalog for local experiments but too
			// slow for the generated suite.
			Skip:   true,
			GitURL: "https://github.com/trailheadapps/lwc-recipes.git",
			Deploy: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "LightningComponentBundle",
						ToVerify: []string{"force-app/main/default/lwc/**/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
				ModeTestLevel: {},
			},
			Retrieve: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app/main/default/lwc",
						ToVerify: []string{"force-app/main/default/lwc/**/*"},
					},
				},
				ModeMetadata: {
					{
						Args:     "ApexClass",
						ToVerify: []string{"force-app/main/default/classes/*"},
					},
				},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"force-app/main/default/**/*"},
					},
				},
			},
			Convert: map[string][]TestCase{
				ModeSourcepath: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/lwc/**/*"},
					},
				},
				ModeMetadata: {},
				ModeManifest: {
					{
						Args:     "force-app",
						ToVerify: []string{"metadataPackage_*/package.xml"},
					},
				},
			},
		},
	}
}
