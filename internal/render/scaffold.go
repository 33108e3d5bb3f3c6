package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RenderPackageJSON emits the npm manifest for the generated Vite project.
func RenderPackageJSON(projectName string) string {
	manifest := map[string]any{
		"name":    projectName,
		"private": true,
		"version": "1.0.0",
		"type":    "module",
		"scripts": map[string]string{
			"dev":     "vite",
			"build":   "vite build",
			"preview": "vite preview",
		},
		"dependencies": map[string]string{
			"react":              "^18.3.1",
			"react-dom":          "^18.3.1",
			"react-router-dom":   "^6.28.0",
			"react-helmet-async": "^2.0.5",
		},
		"devDependencies": map[string]string{
			"@vitejs/plugin-react": "^4.3.4",
			"vite":                 "^6.0.0",
			"tailwindcss":          "^3.4.17",
			"postcss":              "^8.4.49",
			"autoprefixer":         "^10.4.20",
		},
	}
	out, _ := json.MarshalIndent(manifest, "", "  ")
	return string(out) + "\n"
}

// RenderViteConfig emits vite.config.js.
func RenderViteConfig() string {
	return `import { defineConfig } from 'vite';
import react from '@vitejs/plugin-react';

export default defineConfig({ plugins: [react()] });
`
}

// RenderPostCSSConfig emits postcss.config.js.
func RenderPostCSSConfig() string {
	return `export default { plugins: { tailwindcss: {}, autoprefixer: {} } };
`
}

// RenderTailwindConfig emits tailwind.config.js with the animation extensions
// the section templates use and the project's font family.
func RenderTailwindConfig(fonts FontSet) string {
	family := "'Poppins'"
	if parts := strings.SplitN(fonts.Family, "'", 3); len(parts) == 3 {
		family = "'" + parts[1] + "'"
	}
	return fmt.Sprintf(`/** @type {import('tailwindcss').Config} */
export default {
  content: ['./index.html', './src/**/*.{js,jsx}'],
  theme: {
    extend: {
      fontFamily: { sans: [%s, 'sans-serif'] },
      animation: {
        ticker: 'ticker 30s linear infinite',
        shimmer: 'shimmer 2s ease-in-out infinite',
        float: 'float 3s ease-in-out infinite',
        'slide-up': 'slide-up 0.6s ease-out',
        pulse: 'pulse 2s ease-in-out infinite',
        bounce: 'bounce 1s ease-in-out infinite',
        glow: 'glow 2s ease-in-out infinite',
        'spin-slow': 'spin-slow 8s linear infinite',
        wiggle: 'wiggle 1s ease-in-out infinite',
        'fade-in': 'fade-in 0.7s ease-out both',
        'scale-in': 'scale-in 0.5s ease-out both'
      },
      keyframes: {
        ticker: { '0%%': { transform: 'translateX(0)' }, '100%%': { transform: 'translateX(-50%%)' } },
        shimmer: { '0%%, 100%%': { opacity: '1' }, '50%%': { opacity: '0.7' } },
        float: { '0%%, 100%%': { transform: 'translateY(0)' }, '50%%': { transform: 'translateY(-10px)' } },
        'slide-up': { '0%%': { opacity: '0', transform: 'translateY(20px)' }, '100%%': { opacity: '1', transform: 'translateY(0)' } },
        pulse: { '0%%, 100%%': { opacity: '1' }, '50%%': { opacity: '0.8' } },
        bounce: { '0%%, 100%%': { transform: 'translateY(0)' }, '50%%': { transform: 'translateY(-5px)' } },
        glow: { '0%%, 100%%': { filter: 'drop-shadow(0 0 10px rgba(251,191,36,0.5))' }, '50%%': { filter: 'drop-shadow(0 0 20px rgba(251,191,36,0.8))' } },
        'spin-slow': { '0%%': { transform: 'rotate(0deg)' }, '100%%': { transform: 'rotate(360deg)' } },
        wiggle: { '0%%, 100%%': { transform: 'rotate(0deg)' }, '25%%': { transform: 'rotate(-3deg)' }, '75%%': { transform: 'rotate(3deg)' } },
        'fade-in': { from: { opacity: '0', transform: 'translateY(16px)' }, to: { opacity: '1', transform: 'translateY(0)' } },
        'scale-in': { from: { opacity: '0', transform: 'scale(0.9)' }, to: { opacity: '1', transform: 'scale(1)' } }
      }
    }
  },
  plugins: []
};
`, family)
}

// RenderReadme emits the project README.
func RenderReadme(brand, domain string, pages []PageRef) string {
	var pageList strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&pageList, "- %s (`%s`)\n", page.Name, page.Path)
	}
	return fmt.Sprintf(`# %s

Promotional site for %s, generated as a Vite + React + Tailwind project.

## Pages

%s
## Development

`+"```bash"+`
npm install
npm run dev
`+"```"+`

## Production build

`+"```bash"+`
npm run build
`+"```"+`

The build output lands in `+"`dist/`"+`.
`, brand, domain, pageList.String())
}
