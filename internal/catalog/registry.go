package catalog

// registry is the built-in option table. Each entry is a pure data record;
// the resolver and composer treat every option uniformly.
var registry = map[string]OptionInfo{
	// Backend frameworks: JavaScript/TypeScript
	"express": {
		Category: BackendFramework,
		Deps: []Dependency{
			{Name: "express", Constraint: "^5.1.0", Manifest: ManifestNode},
			{Name: "cors", Constraint: "^2.8.5", Manifest: ManifestNode},
			{Name: "dotenv", Constraint: "^17.2.0", Manifest: ManifestNode},
			{Name: "nodemon", Constraint: "^3.1.10", Manifest: ManifestNode, Dev: true},
			{Name: "@types/express", Constraint: "^5.0.3", Manifest: ManifestNode, Dev: true},
			{Name: "@types/cors", Constraint: "^2.8.19", Manifest: ManifestNode, Dev: true},
		},
		TSDeps: []Dependency{
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
			{Name: "@types/node", Constraint: "^24.3.0", Manifest: ManifestNode, Dev: true},
			{Name: "ts-node", Constraint: "^10.9.2", Manifest: ManifestNode, Dev: true},
		},
	},
	"nest": {
		Category: BackendFramework,
		Deps: []Dependency{
			{Name: "@nestjs/core", Constraint: "^11.1.0", Manifest: ManifestNode},
			{Name: "@nestjs/common", Constraint: "^11.1.0", Manifest: ManifestNode},
			{Name: "@nestjs/platform-express", Constraint: "^11.1.0", Manifest: ManifestNode},
			{Name: "@nestjs/cli", Constraint: "^11.0.0", Manifest: ManifestNode, Dev: true},
			{Name: "@nestjs/schematics", Constraint: "^11.0.0", Manifest: ManifestNode, Dev: true},
			{Name: "@nestjs/testing", Constraint: "^11.1.0", Manifest: ManifestNode, Dev: true},
		},
		TSDeps: []Dependency{
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
			{Name: "@types/node", Constraint: "^24.3.0", Manifest: ManifestNode, Dev: true},
		},
	},

	// Backend frameworks: Python
	"fastapi": {
		Category: BackendFramework,
		Deps: []Dependency{
			{Name: "fastapi", Constraint: ">=0.116.0", Manifest: ManifestPython},
			{Name: "uvicorn", Constraint: ">=0.35.0", Manifest: ManifestPython},
			{Name: "python-dotenv", Constraint: ">=1.1.0", Manifest: ManifestPython},
			{Name: "pydantic", Constraint: ">=2.11.0", Manifest: ManifestPython},
			{Name: "pytest", Constraint: ">=8.4.0", Manifest: ManifestPython, Dev: true},
			{Name: "black", Constraint: ">=25.1.0", Manifest: ManifestPython, Dev: true},
			{Name: "flake8", Constraint: ">=7.3.0", Manifest: ManifestPython, Dev: true},
		},
	},
	"django": {
		Category: BackendFramework,
		Deps: []Dependency{
			{Name: "django", Constraint: ">=5.2", Manifest: ManifestPython},
			{Name: "djangorestframework", Constraint: ">=3.16.0", Manifest: ManifestPython},
			{Name: "django-cors-headers", Constraint: ">=4.7.0", Manifest: ManifestPython},
			{Name: "python-dotenv", Constraint: ">=1.1.0", Manifest: ManifestPython},
			{Name: "pytest", Constraint: ">=8.4.0", Manifest: ManifestPython, Dev: true},
			{Name: "pytest-django", Constraint: ">=4.11.0", Manifest: ManifestPython, Dev: true},
			{Name: "black", Constraint: ">=25.1.0", Manifest: ManifestPython, Dev: true},
			{Name: "flake8", Constraint: ">=7.3.0", Manifest: ManifestPython, Dev: true},
		},
	},
	"flask": {
		Category: BackendFramework,
		Deps: []Dependency{
			{Name: "flask", Constraint: ">=3.1.0", Manifest: ManifestPython},
			{Name: "flask-cors", Constraint: ">=6.0.0", Manifest: ManifestPython},
			{Name: "python-dotenv", Constraint: ">=1.1.0", Manifest: ManifestPython},
			{Name: "pytest", Constraint: ">=8.4.0", Manifest: ManifestPython, Dev: true},
			{Name: "black", Constraint: ">=25.1.0", Manifest: ManifestPython, Dev: true},
			{Name: "flake8", Constraint: ">=7.3.0", Manifest: ManifestPython, Dev: true},
		},
	},

	// Frontend frameworks
	"react": {
		Category: FrontendFramework,
		Deps: []Dependency{
			{Name: "react", Constraint: "^19.1.0", Manifest: ManifestNode},
			{Name: "react-dom", Constraint: "^19.1.0", Manifest: ManifestNode},
			{Name: "react-router-dom", Constraint: "^7.8.0", Manifest: ManifestNode},
			{Name: "axios", Constraint: "^1.11.0", Manifest: ManifestNode},
			{Name: "vite", Constraint: "^7.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@vitejs/plugin-react", Constraint: "^5.0.0", Manifest: ManifestNode, Dev: true},
		},
		TSDeps: []Dependency{
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
			{Name: "@types/react", Constraint: "^19.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@types/react-dom", Constraint: "^19.1.0", Manifest: ManifestNode, Dev: true},
		},
	},
	"vue": {
		Category: FrontendFramework,
		Deps: []Dependency{
			{Name: "vue", Constraint: "^3.5.0", Manifest: ManifestNode},
			{Name: "vue-router", Constraint: "^4.5.0", Manifest: ManifestNode},
			{Name: "axios", Constraint: "^1.11.0", Manifest: ManifestNode},
			{Name: "vite", Constraint: "^7.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@vitejs/plugin-vue", Constraint: "^6.0.0", Manifest: ManifestNode, Dev: true},
		},
		TSDeps: []Dependency{
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
			{Name: "vue-tsc", Constraint: "^3.0.0", Manifest: ManifestNode, Dev: true},
		},
	},
	"svelte": {
		Category: FrontendFramework,
		Deps: []Dependency{
			{Name: "svelte", Constraint: "^5.38.0", Manifest: ManifestNode},
			{Name: "svelte-navigator", Constraint: "^3.2.2", Manifest: ManifestNode},
			{Name: "axios", Constraint: "^1.11.0", Manifest: ManifestNode},
			{Name: "vite", Constraint: "^7.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@sveltejs/vite-plugin-svelte", Constraint: "^6.1.0", Manifest: ManifestNode, Dev: true},
		},
		TSDeps: []Dependency{
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
			{Name: "svelte-check", Constraint: "^4.3.0", Manifest: ManifestNode, Dev: true},
		},
	},
	"angular": {
		Category: FrontendFramework,
		Deps: []Dependency{
			{Name: "@angular/core", Constraint: "^20.1.0", Manifest: ManifestNode},
			{Name: "@angular/common", Constraint: "^20.1.0", Manifest: ManifestNode},
			{Name: "@angular/compiler", Constraint: "^20.1.0", Manifest: ManifestNode},
			{Name: "@angular/platform-browser", Constraint: "^20.1.0", Manifest: ManifestNode},
			{Name: "@angular/router", Constraint: "^20.1.0", Manifest: ManifestNode},
			{Name: "rxjs", Constraint: "~7.8.0", Manifest: ManifestNode},
			{Name: "zone.js", Constraint: "~0.15.0", Manifest: ManifestNode},
			{Name: "tslib", Constraint: "^2.8.0", Manifest: ManifestNode},
			{Name: "axios", Constraint: "^1.11.0", Manifest: ManifestNode},
			{Name: "@angular/cli", Constraint: "^20.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@angular/build", Constraint: "^20.1.0", Manifest: ManifestNode, Dev: true},
			{Name: "@angular/compiler-cli", Constraint: "^20.1.0", Manifest: ManifestNode, Dev: true},
			// ng builds through tsc even for JavaScript selections.
			{Name: "typescript", Constraint: "^5.9.2", Manifest: ManifestNode, Dev: true},
		},
	},

	// Databases. Drivers differ per tier language.
	"mongodb": {
		Category: Database,
		LangDeps: map[Language][]Dependency{
			JavaScript: {
				{Name: "mongoose", Constraint: "^8.17.0", Manifest: ManifestNode},
			},
			Python: {
				{Name: "pymongo", Constraint: ">=4.13.0", Manifest: ManifestPython},
				{Name: "motor", Constraint: ">=3.7.0", Manifest: ManifestPython},
			},
		},
	},
	"postgresql": {
		Category: Database,
		LangDeps: map[Language][]Dependency{
			JavaScript: {
				{Name: "pg", Constraint: "^8.16.0", Manifest: ManifestNode},
				{Name: "sequelize", Constraint: "^6.37.0", Manifest: ManifestNode},
			},
			Python: {
				{Name: "psycopg2-binary", Constraint: ">=2.9.10", Manifest: ManifestPython},
				{Name: "sqlalchemy", Constraint: ">=2.0.0", Manifest: ManifestPython},
			},
		},
	},
	"mysql": {
		Category: Database,
		LangDeps: map[Language][]Dependency{
			JavaScript: {
				{Name: "mysql2", Constraint: "^3.14.0", Manifest: ManifestNode},
				{Name: "sequelize", Constraint: "^6.37.0", Manifest: ManifestNode},
			},
			Python: {
				{Name: "mysql-connector-python", Constraint: ">=9.4.0", Manifest: ManifestPython},
				{Name: "sqlalchemy", Constraint: ">=2.0.0", Manifest: ManifestPython},
			},
		},
	},
	"sqlite": {
		Category: Database,
		LangDeps: map[Language][]Dependency{
			JavaScript: {
				{Name: "sqlite3", Constraint: "^5.1.7", Manifest: ManifestNode},
				{Name: "sequelize", Constraint: "^6.37.0", Manifest: ManifestNode},
			},
			Python: {
				{Name: "sqlalchemy", Constraint: ">=2.0.0", Manifest: ManifestPython},
			},
		},
	},

	// Styling libraries
	"tailwind": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
			{Category: FrontendFramework, Option: "vue", Relation: Requires},
			{Category: FrontendFramework, Option: "svelte", Relation: Requires},
			{Category: FrontendFramework, Option: "angular", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "tailwindcss", Constraint: "^4.1.0", Manifest: ManifestNode},
			{Name: "postcss", Constraint: "^8.5.0", Manifest: ManifestNode},
			{Name: "autoprefixer", Constraint: "^10.4.0", Manifest: ManifestNode},
		},
	},
	"bootstrap": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
			{Category: FrontendFramework, Option: "vue", Relation: Requires},
			{Category: FrontendFramework, Option: "angular", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "bootstrap", Constraint: "^5.3.0", Manifest: ManifestNode},
		},
		PeerDeps: map[string][]Dependency{
			"react": {
				{Name: "react-bootstrap", Constraint: "^2.10.0", Manifest: ManifestNode},
			},
			"vue": {
				{Name: "bootstrap-vue", Constraint: "^2.23.1", Manifest: ManifestNode},
			},
			"angular": {
				{Name: "ngx-bootstrap", Constraint: "^20.0.0", Manifest: ManifestNode},
			},
		},
	},
	"mui": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "@mui/material", Constraint: "^7.3.0", Manifest: ManifestNode},
			{Name: "@mui/icons-material", Constraint: "^7.3.0", Manifest: ManifestNode},
			{Name: "@emotion/react", Constraint: "^11.14.0", Manifest: ManifestNode},
			{Name: "@emotion/styled", Constraint: "^11.14.0", Manifest: ManifestNode},
		},
	},
	"chakra": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "@chakra-ui/react", Constraint: "^3.24.0", Manifest: ManifestNode},
			{Name: "@emotion/react", Constraint: "^11.14.0", Manifest: ManifestNode},
			{Name: "@emotion/styled", Constraint: "^11.14.0", Manifest: ManifestNode},
			{Name: "framer-motion", Constraint: "^12.23.0", Manifest: ManifestNode},
		},
	},
	"styled-components": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "styled-components", Constraint: "^6.1.0", Manifest: ManifestNode},
		},
	},
	"vuetify": {
		Category: CSS,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "vue", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "vuetify", Constraint: "^3.9.0", Manifest: ManifestNode},
		},
	},

	// State management
	"redux": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "redux", Constraint: "^5.0.1", Manifest: ManifestNode},
			{Name: "react-redux", Constraint: "^9.2.0", Manifest: ManifestNode},
			{Name: "@reduxjs/toolkit", Constraint: "^2.8.0", Manifest: ManifestNode},
		},
	},
	"zustand": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "zustand", Constraint: "^5.0.0", Manifest: ManifestNode},
		},
	},
	"recoil": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "recoil", Constraint: "^0.7.7", Manifest: ManifestNode},
		},
	},
	"jotai": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "jotai", Constraint: "^2.12.0", Manifest: ManifestNode},
		},
	},
	"context": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "react", Relation: Requires},
		},
		// React's built-in Context API, nothing to install.
	},
	"pinia": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "vue", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "pinia", Constraint: "^3.0.0", Manifest: ManifestNode},
		},
	},
	"vuex": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "vue", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "vuex", Constraint: "^4.1.0", Manifest: ManifestNode},
		},
	},
	"svelte-store": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "svelte", Relation: Requires},
		},
		// Ships with svelte itself.
	},
	"ngrx": {
		Category: StateMgmt,
		Peers: []Peer{
			{Category: FrontendFramework, Option: "angular", Relation: Requires},
		},
		Deps: []Dependency{
			{Name: "@ngrx/store", Constraint: "^20.0.0", Manifest: ManifestNode},
			{Name: "@ngrx/effects", Constraint: "^20.0.0", Manifest: ManifestNode},
			{Name: "@ngrx/entity", Constraint: "^20.0.0", Manifest: ManifestNode},
		},
	},

	// Package managers. JS managers refuse Python backends and vice versa;
	// the frontend tier always installs with a JS manager regardless.
	"npm": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Excludes},
			{Category: BackendFramework, Option: "django", Relation: Excludes},
			{Category: BackendFramework, Option: "flask", Relation: Excludes},
		},
	},
	"yarn": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Excludes},
			{Category: BackendFramework, Option: "django", Relation: Excludes},
			{Category: BackendFramework, Option: "flask", Relation: Excludes},
		},
	},
	"pnpm": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Excludes},
			{Category: BackendFramework, Option: "django", Relation: Excludes},
			{Category: BackendFramework, Option: "flask", Relation: Excludes},
		},
	},
	"poetry": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Requires},
			{Category: BackendFramework, Option: "django", Relation: Requires},
			{Category: BackendFramework, Option: "flask", Relation: Requires},
		},
	},
	"pip": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Requires},
			{Category: BackendFramework, Option: "django", Relation: Requires},
			{Category: BackendFramework, Option: "flask", Relation: Requires},
		},
	},
	"conda": {
		Category: PackageManager,
		Peers: []Peer{
			{Category: BackendFramework, Option: "fastapi", Relation: Requires},
			{Category: BackendFramework, Option: "django", Relation: Requires},
			{Category: BackendFramework, Option: "flask", Relation: Requires},
		},
	},
}
