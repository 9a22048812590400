// Package source publishes the open-source artifacts of a DTAL's calculator
// service: the FastAPI implementation, its container files, and the deployment
// guide. Like the MCP material this is static display content; the platform
// serves it so clients can offer copy and download affordances without
// bundling the files themselves.
package source

import "github.com/dtal-platform/api/internal/i18n"

// File is one published source artifact. Descriptions are language pairs;
// the handler resolves them per request.
type File struct {
	Name        string
	Language    string
	Description i18n.LocalizedString
	Content     string
}

// DeploymentStep is one section of the deployment guide.
type DeploymentStep struct {
	Title    i18n.LocalizedString
	Commands string
}

// Bundle holds everything the source view of an entry displays.
type Bundle struct {
	License    string
	Files      []File
	Deployment []DeploymentStep
}

const mainPyContent = `from fastapi import FastAPI, HTTPException
from pydantic import BaseModel
from typing import Dict, Any
import logging

app = FastAPI(
    title="Upper Austrian Tourism Levy Calculator",
    description="Digital Twin for calculating tourism levy in Upper Austria",
    version="1.0.0"
)

class TourismLevyRequest(BaseModel):
    municipality_name: str
    business_activity: str
    revenue_two_years_ago: float

class TourismLevyResponse(BaseModel):
    levy_amount: float
    currency: str
    calculation_details: Dict[str, Any]
    law_references: list[str]

@app.post("/calculate", response_model=TourismLevyResponse)
async def calculate_tourism_levy(request: TourismLevyRequest):
    """Calculate the Upper Austrian tourism levy."""
    try:
        # Base rate: 0.3% of revenue
        base_rate = 0.003

        # Municipal multiplier
        municipal_multiplier = 1.2 if "Linz" in request.municipality_name else 1.0

        # Business activity multiplier
        activity_multiplier = {
            "Hotel": 1.5,
            "Restaurant": 1.2,
            "Café": 1.1,
            "Retail": 1.0
        }.get(request.business_activity, 1.0)

        # Calculate levy
        calculated_amount = (
            request.revenue_two_years_ago *
            base_rate *
            municipal_multiplier *
            activity_multiplier
        )

        # Minimum levy
        min_levy = 50.0
        final_amount = max(calculated_amount, min_levy)

        return TourismLevyResponse(
            levy_amount=final_amount,
            currency="EUR",
            calculation_details={
                "base_rate": base_rate,
                "municipal_multiplier": municipal_multiplier,
                "activity_multiplier": activity_multiplier,
                "minimum_levy": min_levy,
                "calculated_before_minimum": calculated_amount
            },
            law_references=[
                "§ 3 Oö. Tourismusabgabegesetz - Bemessungsgrundlage",
                "§ 4 Oö. Tourismusabgabegesetz - Abgabensatz",
                "§ 5 Oö. Tourismusabgabegesetz - Mindestabgabe"
            ]
        )
    except Exception as e:
        raise HTTPException(status_code=400, detail=str(e))

@app.get("/health")
async def health_check():
    return {"status": "healthy"}`

const dockerfileContent = `FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["python", "-m", "uvicorn", "main:app", "--host", "0.0.0.0", "--port", "8000"]`

const requirementsContent = `fastapi==0.104.1
uvicorn==0.24.0
pydantic==2.5.0
mcp==1.0.0
python-multipart==0.0.6`

const localDevCommands = `# Install dependencies
pip install -r requirements.txt

# Run the server
python -m uvicorn main:app --reload --port 8000

# Server will be available at http://localhost:8000`

const dockerCommands = `# Build the Docker image
docker build -t tourism-levy-calculator .

# Run the container
docker run -p 8000:8000 tourism-levy-calculator

# Server will be available at http://localhost:8000`

const azureCommands = `# Login to Azure
az login

# Create resource group
az group create --name tourism-levy-rg --location germanywestcentral

# Deploy container app
az containerapp create \
  --name tourism-levy-app \
  --resource-group tourism-levy-rg \
  --environment tourism-levy-env \
  --image tourism-levy-calculator \
  --target-port 8000 \
  --ingress external`

// BuildBundle assembles the published source artifacts for a catalog entry.
func BuildBundle() Bundle {
	return Bundle{
		License: "MIT License",
		Files: []File{
			{
				Name:     "main.py",
				Language: "python",
				Description: i18n.LocalizedString{
					De: "Hauptanwendung mit FastAPI",
					En: "Main application with FastAPI",
				},
				Content: mainPyContent,
			},
			{
				Name:     "Dockerfile",
				Language: "dockerfile",
				Description: i18n.LocalizedString{
					De: "Docker Container Konfiguration",
					En: "Docker container configuration",
				},
				Content: dockerfileContent,
			},
			{
				Name:     "requirements.txt",
				Language: "text",
				Description: i18n.LocalizedString{
					De: "Python Abhängigkeiten",
					En: "Python dependencies",
				},
				Content: requirementsContent,
			},
		},
		Deployment: []DeploymentStep{
			{
				Title:    i18n.LocalizedString{De: "Lokale Entwicklung", En: "Local Development"},
				Commands: localDevCommands,
			},
			{
				Title:    i18n.LocalizedString{De: "Docker", En: "Docker"},
				Commands: dockerCommands,
			},
			{
				Title:    i18n.LocalizedString{De: "Azure Deployment", En: "Azure Deployment"},
				Commands: azureCommands,
			},
		},
	}
}
