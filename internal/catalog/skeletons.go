package catalog

// Skeleton predicates. Each is evaluated once per tier during composition.

func whenTS(f Facts) bool    { return f.TypeScript }
func whenNotTS(f Facts) bool { return !f.TypeScript }

func whenDatabase(f Facts) bool {
	return f.Database != "" && f.Database != None
}

func whenReduxJS(f Facts) bool { return f.StateMgmt == "redux" && !f.TypeScript }
func whenReduxTS(f Facts) bool { return f.StateMgmt == "redux" && f.TypeScript }

// whenStore reports whether the chosen state-management library keeps its
// code in a dedicated store directory. React's context API and svelte's
// built-in stores live alongside components instead.
func whenStore(f Facts) bool {
	switch f.StateMgmt {
	case "", None, "context", "svelte-store":
		return false
	}
	return true
}

// skeletons maps (category, option) to the directory skeleton that option
// brings. Paths are relative to the tier root; "{{project}}" is replaced
// with the snake_cased project name during composition.
var skeletons = map[skeletonKey][]SkeletonEntry{
	{BackendFramework, "express"}: {
		{Path: "src/config", Keep: true},
		{Path: "src/models", Keep: true},
		{Path: "src/controllers", Keep: true},
		{Path: "src/routes", Keep: true},
		{Path: "src/middleware", Keep: true},
		{Path: "src/utils", Keep: true},
		{Path: "src/types", Keep: true, When: whenTS},
		{Path: "src/app.js", Fragment: "express_app", When: whenNotTS},
		{Path: "src/app.ts", Fragment: "express_app", When: whenTS},
		{Path: "tsconfig.json", Fragment: "tsconfig", When: whenTS},
		{Path: ".env", Fragment: "env_node"},
	},
	{BackendFramework, "nest"}: {
		{Path: "src/modules", Keep: true},
		{Path: "src/common", Keep: true},
		{Path: "src/config", Keep: true},
		{Path: "src/main.ts", Fragment: "nest_main"},
		{Path: "tsconfig.json", Fragment: "tsconfig"},
		{Path: ".env", Fragment: "env_nest"},
	},
	{BackendFramework, "fastapi"}: {
		{Path: "app/routers", Keep: true},
		{Path: "app/models", Keep: true},
		{Path: "app/schemas", Keep: true},
		{Path: "app/services", Keep: true},
		{Path: "app/utils", Keep: true},
		{Path: "tests", Keep: true},
		{Path: "app/__init__.py", Fragment: "py_init"},
		{Path: "app/routers/__init__.py", Fragment: "py_init"},
		{Path: "app/models/__init__.py", Fragment: "py_init"},
		{Path: "app/schemas/__init__.py", Fragment: "py_init"},
		{Path: "app/services/__init__.py", Fragment: "py_init"},
		{Path: "app/utils/__init__.py", Fragment: "py_init"},
		{Path: "app/main.py", Fragment: "fastapi_main"},
		{Path: "app/db.py", Fragment: "python_db", When: whenDatabase},
		{Path: ".env", Fragment: "env_python"},
	},
	{BackendFramework, "django"}: {
		{Path: "static", Keep: true},
		{Path: "templates", Keep: true},
		{Path: "manage.py", Fragment: "django_manage"},
		{Path: "{{project}}/__init__.py", Fragment: "py_init"},
		{Path: "{{project}}/settings.py", Fragment: "django_settings"},
		{Path: "{{project}}/urls.py", Fragment: "django_urls"},
		{Path: "{{project}}/wsgi.py", Fragment: "django_wsgi"},
		{Path: "{{project}}/asgi.py", Fragment: "django_asgi"},
		{Path: "api/__init__.py", Fragment: "py_init"},
		{Path: "api/migrations/__init__.py", Fragment: "py_init"},
		{Path: "api/apps.py", Fragment: "django_api_apps"},
		{Path: "api/models.py", Fragment: "django_api_models"},
		{Path: "api/views.py", Fragment: "django_api_views"},
		{Path: "api/urls.py", Fragment: "django_api_urls"},
		{Path: ".env", Fragment: "env_python"},
	},
	{BackendFramework, "flask"}: {
		{Path: "app/models", Keep: true},
		{Path: "app/templates", Keep: true},
		{Path: "app/static", Keep: true},
		{Path: "tests", Keep: true},
		{Path: "app/__init__.py", Fragment: "flask_init"},
		{Path: "app/models/__init__.py", Fragment: "py_init"},
		{Path: "app/routes/__init__.py", Fragment: "py_init"},
		{Path: "app/routes/main_routes.py", Fragment: "flask_routes"},
		{Path: "app/db.py", Fragment: "python_db", When: whenDatabase},
		{Path: "wsgi.py", Fragment: "flask_wsgi"},
		{Path: ".env", Fragment: "env_python"},
	},

	{FrontendFramework, "react"}: {
		{Path: "src/components", Keep: true},
		{Path: "src/pages", Keep: true},
		{Path: "src/hooks", Keep: true},
		{Path: "src/utils", Keep: true},
		{Path: "src/assets/styles", Keep: true},
		{Path: "src/assets/images", Keep: true},
		{Path: "src/types", Keep: true, When: whenTS},
		{Path: "src/store", Keep: true, When: whenStore},
		{Path: "src/store/index.js", Fragment: "redux_store", When: whenReduxJS},
		{Path: "src/store/index.ts", Fragment: "redux_store", When: whenReduxTS},
		{Path: "public", Keep: true},
		{Path: "index.html", Fragment: "vite_index"},
		{Path: "src/main.jsx", Fragment: "react_main", When: whenNotTS},
		{Path: "src/main.tsx", Fragment: "react_main", When: whenTS},
		{Path: "src/App.jsx", Fragment: "react_app", When: whenNotTS},
		{Path: "src/App.tsx", Fragment: "react_app", When: whenTS},
		{Path: "vite.config.js", Fragment: "vite_config_react", When: whenNotTS},
		{Path: "vite.config.ts", Fragment: "vite_config_react", When: whenTS},
		{Path: "tsconfig.json", Fragment: "tsconfig_client", When: whenTS},
	},
	{FrontendFramework, "vue"}: {
		{Path: "src/components", Keep: true},
		{Path: "src/views", Keep: true},
		{Path: "src/composables", Keep: true},
		{Path: "src/utils", Keep: true},
		{Path: "src/assets/styles", Keep: true},
		{Path: "src/assets/images", Keep: true},
		{Path: "src/store", Keep: true, When: whenStore},
		{Path: "public", Keep: true},
		{Path: "index.html", Fragment: "vite_index"},
		{Path: "src/main.js", Fragment: "vue_main", When: whenNotTS},
		{Path: "src/main.ts", Fragment: "vue_main", When: whenTS},
		{Path: "src/App.vue", Fragment: "vue_app"},
		{Path: "vite.config.js", Fragment: "vite_config_vue", When: whenNotTS},
		{Path: "vite.config.ts", Fragment: "vite_config_vue", When: whenTS},
		{Path: "tsconfig.json", Fragment: "tsconfig_client", When: whenTS},
	},
	{FrontendFramework, "svelte"}: {
		{Path: "src/components", Keep: true},
		{Path: "src/routes", Keep: true},
		{Path: "src/lib", Keep: true},
		{Path: "src/assets", Keep: true},
		{Path: "public", Keep: true},
		{Path: "index.html", Fragment: "vite_index"},
		{Path: "src/main.js", Fragment: "svelte_main", When: whenNotTS},
		{Path: "src/main.ts", Fragment: "svelte_main", When: whenTS},
		{Path: "src/App.svelte", Fragment: "svelte_app"},
		{Path: "vite.config.js", Fragment: "vite_config_svelte", When: whenNotTS},
		{Path: "vite.config.ts", Fragment: "vite_config_svelte", When: whenTS},
	},
	{FrontendFramework, "angular"}: {
		{Path: "src/app/components", Keep: true},
		{Path: "src/app/pages", Keep: true},
		{Path: "src/app/services", Keep: true},
		{Path: "src/app/shared", Keep: true},
		{Path: "src/app/store", Keep: true, When: whenStore},
		{Path: "public", Keep: true},
		{Path: "angular.json", Fragment: "angular_json"},
		{Path: "src/index.html", Fragment: "angular_index"},
		{Path: "src/main.ts", Fragment: "angular_main"},
		{Path: "src/styles.css", Fragment: "angular_styles"},
		{Path: "src/app/app.component.ts", Fragment: "angular_app_component"},
		{Path: "src/app/app.config.ts", Fragment: "angular_app_config"},
		{Path: "src/app/app.routes.ts", Fragment: "angular_app_routes"},
		{Path: "tsconfig.json", Fragment: "tsconfig_angular"},
		{Path: "tsconfig.app.json", Fragment: "tsconfig_angular_app"},
	},
}
